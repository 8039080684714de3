package models

import "math"

// coordPrecision — количество знаков после запятой для координат в ответе API.
const coordPrecision = 6

// User — одна строка, возвращённая generate_fake_users.
// Набор полей определяется хранимой функцией и этим слоем не фиксируется:
// запись прозрачно проходит от БД до клиента. Известны (и нормализуются)
// только latitude/longitude.
type User map[string]any

// RoundCoordinates округляет latitude/longitude до 6 знаков после запятой.
// Поля с другим типом или отсутствующие остаются как есть.
func (u User) RoundCoordinates() {
	for _, key := range []string{"latitude", "longitude"} {
		if v, ok := u[key].(float64); ok {
			u[key] = roundTo(v, coordPrecision)
		}
	}
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
