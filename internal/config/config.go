package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Env         string `mapstructure:"ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	// AuthJWTSecret vacío = modo dev (X-Debug-User-ID).
	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
	// AuthJWTIssuer vacío = no se valida el iss del token.
	AuthJWTIssuer string `mapstructure:"AUTH_JWT_ISSUER"`

	// Referencias a modelos externos en formato app_label.model (schema.tabla en Postgres).
	VisitModel          string `mapstructure:"VISIT_MODEL"`
	InfantBirthModel    string `mapstructure:"INFANT_BIRTH_MODEL"`
	SubjectConsentModel string `mapstructure:"SUBJECT_CONSENT_MODEL"`
	ConsentVersionModel string `mapstructure:"CONSENT_VERSION_MODEL"`
	ChildOffstudyModel  string `mapstructure:"CHILD_OFFSTUDY_MODEL"`
	ActionItemModel     string `mapstructure:"ACTION_ITEM_MODEL"`
	ActionTypeModel     string `mapstructure:"ACTION_TYPE_MODEL"`
}

var keys = []string{
	"PORT", "ENV", "DATABASE_URL",
	"LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"AUTH_JWT_SECRET", "AUTH_JWT_ISSUER",
	"VISIT_MODEL", "INFANT_BIRTH_MODEL", "SUBJECT_CONSENT_MODEL", "CONSENT_VERSION_MODEL",
	"CHILD_OFFSTUDY_MODEL", "ACTION_ITEM_MODEL", "ACTION_TYPE_MODEL",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "child-validations")
	v.SetDefault("VISIT_MODEL", "flourish_child.childvisit")
	v.SetDefault("INFANT_BIRTH_MODEL", "flourish_child.childbirth")
	v.SetDefault("SUBJECT_CONSENT_MODEL", "flourish_caregiver.subjectconsent")
	v.SetDefault("CONSENT_VERSION_MODEL", "flourish_caregiver.flourishconsentversion")
	v.SetDefault("CHILD_OFFSTUDY_MODEL", "flourish_prn.childoffstudy")
	v.SetDefault("ACTION_ITEM_MODEL", "edc_action_item.actionitem")
	v.SetDefault("ACTION_TYPE_MODEL", "edc_action_item.actiontype")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional, pero si existe tiene que parsear
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate exige auth real fuera de development y referencias de modelo bien formadas.
func (c *Config) Validate() error {
	if !c.IsDev() && strings.TrimSpace(c.AuthJWTSecret) == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required when ENV=%q", c.Env)
	}

	models := map[string]string{
		"VISIT_MODEL":           c.VisitModel,
		"INFANT_BIRTH_MODEL":    c.InfantBirthModel,
		"SUBJECT_CONSENT_MODEL": c.SubjectConsentModel,
		"CONSENT_VERSION_MODEL": c.ConsentVersionModel,
		"CHILD_OFFSTUDY_MODEL":  c.ChildOffstudyModel,
		"ACTION_ITEM_MODEL":     c.ActionItemModel,
		"ACTION_TYPE_MODEL":     c.ActionTypeModel,
	}
	for key, label := range models {
		parts := strings.Split(label, ".")
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return fmt.Errorf("%s must be app_label.model, got %q", key, label)
		}
	}
	return nil
}
