package domain

import (
	"sort"
	"strings"
)

// Point - координаты точки
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// POI представляет точку интереса
type POI struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	DistanceM float64 `json:"distance_m,omitempty"`
}

// RawElement - сырой элемент из Overpass API (node/way/relation)
type RawElement struct {
	ID     int64             `json:"id"`
	Type   string            `json:"type"`
	Lat    float64           `json:"lat,omitempty"`
	Lon    float64           `json:"lon,omitempty"`
	Center *Point            `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Приоритет тегов при определении категории. Первый непустой тег,
// значение которого не является generic-заглушкой, становится категорией.
var categoryTagPriority = []string{"amenity", "shop", "leisure", "tourism", "building"}

// genericTagValue - значение-заглушка OSM ("building=yes"), не несёт категории
const genericTagValue = "yes"

// UnknownName - имя по умолчанию, когда ни одно поле не разрешилось
const UnknownName = "Unknown"

// ResolveCategory определяет категорию POI по набору тегов.
// Возвращает пустую строку, если ни один приоритетный тег не подходит.
func ResolveCategory(tags map[string]string) string {
	for _, key := range categoryTagPriority {
		if v, ok := tags[key]; ok && v != "" && v != genericTagValue {
			return v
		}
	}
	return ""
}

// ResolveName определяет отображаемое имя POI.
// Порядок: name -> локализованный name:* (детерминированно: наименьший ключ) ->
// brand -> operator -> категория -> "Unknown".
func ResolveName(tags map[string]string, category string) string {
	if name := tags["name"]; name != "" {
		return name
	}

	var localizedKeys []string
	for key := range tags {
		if strings.HasPrefix(key, "name:") && tags[key] != "" {
			localizedKeys = append(localizedKeys, key)
		}
	}
	if len(localizedKeys) > 0 {
		sort.Strings(localizedKeys)
		return tags[localizedKeys[0]]
	}

	if brand := tags["brand"]; brand != "" {
		return brand
	}
	if operator := tags["operator"]; operator != "" {
		return operator
	}
	if category != "" {
		return category
	}
	return UnknownName
}

// FromRawElement преобразует элемент Overpass в POI.
// Возвращает false, если у элемента нет координат (ни прямых, ни center) -
// такой элемент не несёт пространственного смысла и отбрасывается.
func FromRawElement(el RawElement) (POI, bool) {
	lat, lon := el.Lat, el.Lon
	if lat == 0 && lon == 0 {
		if el.Center == nil {
			return POI{}, false
		}
		lat, lon = el.Center.Lat, el.Center.Lon
		if lat == 0 && lon == 0 {
			return POI{}, false
		}
	}

	category := ResolveCategory(el.Tags)
	return POI{
		ID:       el.ID,
		Type:     el.Type,
		Lat:      lat,
		Lon:      lon,
		Name:     ResolveName(el.Tags, category),
		Category: category,
	}, true
}
