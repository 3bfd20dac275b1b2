package entity

// Location is a monitored geographic location. Rows are read fresh on every
// synchronization pass and never written by this service.
type Location struct {
	ID          int64   `json:"id" gorm:"column:id_location;primaryKey"`
	CountryCode string  `json:"countryCode" gorm:"column:country_code"`
	CityName    string  `json:"cityName" gorm:"column:city_name"`
	Latitude    float64 `json:"latitude" gorm:"column:latitude"`
	Longitude   float64 `json:"longitude" gorm:"column:longitude"`
	ActiveFlag  string  `json:"activeFlag" gorm:"column:active_flag"`
}

// TableName maps the entity to the store table.
func (Location) TableName() string {
	return "weather_locations"
}
