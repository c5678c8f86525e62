package configuration

import (
	"fmt"
	"os"
	"strconv"

	"vespa-academy/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App      App      `json:"app"`
	Database Database `json:"database"`
	Mail     Mail     `json:"mail"`
	Admin    Admin    `json:"admin"`
	Cors     Cors     `json:"cors"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSLMode  string `json:"sslMode"`
}

// Mail holds the SendGrid settings for the contact enquiry form.
type Mail struct {
	SendGridAPIKey string `json:"sendGridAPIKey"`
	SenderEmail    string `json:"senderEmail"`
	RecipientEmail string `json:"recipientEmail"`
}

// Admin holds the seed administrator credentials applied at startup when
// the account does not exist yet.
type Admin struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type Cors struct {
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initMail(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = "localhost"
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = "5432"
	}
	if C.Database.Psql.SSLMode == "" {
		if v := os.Getenv("DB_SSLMODE"); v != "" {
			C.Database.Psql.SSLMode = v
		} else {
			C.Database.Psql.SSLMode = "disable"
		}
	}
}

func initApp(C *Config) {
	// SECRET_KEY from environment wins over the config file when provided
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order: APP_PORT -> PORT -> config -> default 5000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 5000
	}
	if C.Admin.UserName == "" {
		C.Admin.UserName = os.Getenv("ADMIN_USERNAME")
	}
	if C.Admin.Password == "" {
		C.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; admin authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initMail(C *Config) {
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		C.Mail.SendGridAPIKey = v
	}
	if v := os.Getenv("RECIPIENT_EMAIL"); v != "" {
		C.Mail.RecipientEmail = v
	}
	if v := os.Getenv("SENDER_EMAIL"); v != "" {
		C.Mail.SenderEmail = v
	}
	// Mirror the recipient when no dedicated sender is configured
	if C.Mail.SenderEmail == "" {
		C.Mail.SenderEmail = C.Mail.RecipientEmail
	}
	if C.Mail.SendGridAPIKey == "" {
		logger.GetLogger().Warn("SendGrid API key not set; enquiry emails will not be delivered")
	}
}
