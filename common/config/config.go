package config

import (
	"strings"

	"github.com/spf13/viper"

	"riichi-calc/riichi"
)

// ScoringConf mirrors riichi.Rules for the config file.
type ScoringConf struct {
	HonbaTsumoBonus int  `mapstructure:"honbaTsumoBonus"`
	HonbaRonBonus   int  `mapstructure:"honbaRonBonus"`
	ManganBase      int  `mapstructure:"manganBase"`
	HanemanBase     int  `mapstructure:"hanemanBase"`
	BaimanBase      int  `mapstructure:"baimanBase"`
	SanbaimanBase   int  `mapstructure:"sanbaimanBase"`
	YakumanBase     int  `mapstructure:"yakumanBase"`
	KiriageMangan   bool `mapstructure:"kiriageMangan"`
	MaxAkaDora      int  `mapstructure:"maxAkaDora"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	Scoring ScoringConf `mapstructure:"scoring"`
	Log     LogConf     `mapstructure:"log"`
}

var Conf AppConfig

// Load fills Conf from defaults, then an optional config file, then
// RIICHI_-prefixed environment variables. A missing file path is fine;
// an unreadable one is an error.
func Load(configFile string) error {
	v := viper.New()
	setDefaults(v, riichi.DefaultRules())

	v.SetEnvPrefix("RIICHI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	return v.Unmarshal(&Conf)
}

func setDefaults(v *viper.Viper, rules riichi.Rules) {
	v.SetDefault("scoring.honbaTsumoBonus", rules.HonbaTsumoBonus)
	v.SetDefault("scoring.honbaRonBonus", rules.HonbaRonBonus)
	v.SetDefault("scoring.manganBase", rules.ManganBase)
	v.SetDefault("scoring.hanemanBase", rules.HanemanBase)
	v.SetDefault("scoring.baimanBase", rules.BaimanBase)
	v.SetDefault("scoring.sanbaimanBase", rules.SanbaimanBase)
	v.SetDefault("scoring.yakumanBase", rules.YakumanBase)
	v.SetDefault("scoring.kiriageMangan", rules.KiriageMangan)
	v.SetDefault("scoring.maxAkaDora", rules.MaxAkaDora)
	v.SetDefault("log.level", "info")
}

// Rules converts the loaded scoring section back into the engine's type.
func (c *AppConfig) Rules() riichi.Rules {
	return riichi.Rules{
		HonbaTsumoBonus: c.Scoring.HonbaTsumoBonus,
		HonbaRonBonus:   c.Scoring.HonbaRonBonus,
		ManganBase:      c.Scoring.ManganBase,
		HanemanBase:     c.Scoring.HanemanBase,
		BaimanBase:      c.Scoring.BaimanBase,
		SanbaimanBase:   c.Scoring.SanbaimanBase,
		YakumanBase:     c.Scoring.YakumanBase,
		KiriageMangan:   c.Scoring.KiriageMangan,
		MaxAkaDora:      c.Scoring.MaxAkaDora,
	}
}
