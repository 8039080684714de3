// models содержит доменные модели usergen-service.
package models

// Locale — справочная запись локали из таблицы locales.
// Данные принадлежат БД и этим кодом никогда не изменяются.
type Locale struct {
	// Code — идентификатор вида "en_US".
	Code string `json:"locale_code"`
	// Name — человекочитаемое название ("English (US)").
	Name string `json:"locale_name"`
}
