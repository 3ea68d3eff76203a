package config

import (
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init跟read分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀取 需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort         string `mapstructure:"SERVER_PORT"`
	DataDir            string `mapstructure:"DATA_DIR"`
	CompanyUserListURL string `mapstructure:"COMPANY_USER_LIST_URL"`
	AuthTokenKey       string `mapstructure:"AUTH_TOKEN_KEY"`
	RateLimitRPS       int    `mapstructure:"RATE_LIMIT_RPS"`
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				setConfig(cf)
			} else {
				log.Fatal("error read config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					setConfig(cf)
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

// setConfig 熱更新與讀取共用同一把鎖，指標替換必須在寫鎖內
func setConfig(cf *Config) {
	config_singleton.mu.Lock()
	defer config_singleton.mu.Unlock()
	config_singleton.Config = cf
}

/*
單純回傳錯誤 由外部決定要不要Fatal, 畢竟有可能有替代方案
*/
func loadConfig() (cf *Config, err error) {
	config_singleton.mu.Lock()
	defer config_singleton.mu.Unlock()

	cf = &Config{}
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("COMPANY_USER_LIST_URL", "http://202.131.123.86:8081/procurement/WS/get_all_user_list")
	viper.SetDefault("AUTH_TOKEN_KEY", "vendorportal-dev-signing-key-0001")
	viper.SetDefault("RATE_LIMIT_RPS", 10)

	err = viper.ReadInConfig()
	if err != nil {
		//沒有.env時用預設值跟環境變數
		err = nil
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}
	return
}
