package utils

import "strings"

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadiusM проверяет валидность радиуса поиска (10 - 5000 метров)
func ValidateRadiusM(radiusM int) bool {
	return radiusM >= 10 && radiusM <= 5000
}

// NormalizeAddress приводит адрес к канонической форме для ключей кеша
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}
