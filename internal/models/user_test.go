package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты округления координат (user.go).

func TestUser_RoundCoordinates_SixDecimals(t *testing.T) {
	t.Parallel()

	u := User{
		"latitude":  55.75582212345,
		"longitude": -37.61729987654,
		"full_name": "User 1",
	}

	u.RoundCoordinates()

	lat, ok := u["latitude"].(float64)
	require.True(t, ok)
	lon, ok := u["longitude"].(float64)
	require.True(t, ok)

	require.InDelta(t, 55.755822, lat, 1e-9)
	require.InDelta(t, -37.617300, lon, 1e-9)
	// Прочие поля не трогаем.
	require.Equal(t, "User 1", u["full_name"])
}

func TestUser_RoundCoordinates_MissingOrWrongType(t *testing.T) {
	t.Parallel()

	u := User{
		"latitude": "not-a-float",
	}

	u.RoundCoordinates()

	// Нечисловое значение остаётся как есть, отсутствующее не появляется.
	require.Equal(t, "not-a-float", u["latitude"])
	_, ok := u["longitude"]
	require.False(t, ok)
}

func TestUser_RoundCoordinates_AlreadyRounded(t *testing.T) {
	t.Parallel()

	u := User{"latitude": 1.5, "longitude": -2.25}
	u.RoundCoordinates()

	require.Equal(t, 1.5, u["latitude"])
	require.Equal(t, -2.25, u["longitude"])
}
