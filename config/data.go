package config

import (
	"github.com/spf13/viper"
)

// Data represents the data layer configuration.
type Data struct {
	MongoDB *MongoDB
}

// MongoDB mongodb config struct
type MongoDB struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
	Logging  bool   `json:"logging"`
}

// getDataConfig reads the data layer configuration.
func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		MongoDB: &MongoDB{
			URI:      v.GetString("data.mongodb.uri"),
			Database: v.GetString("data.mongodb.database"),
			Logging:  v.GetBool("data.mongodb.logging"),
		},
	}
}
