package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Sheets         Sheets         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Sheets contém os dados de acesso à planilha remota (API de leitura do Google Sheets)
type Sheets struct {
	BaseURL       string `mapstructure:"sheets_base_url"`
	SpreadsheetID string `mapstructure:"sheets_spreadsheet_id"`
	Range         string `mapstructure:"sheets_range"`
	APIKey        string `mapstructure:"sheets_api_key"`
}

// Dataset controla o comportamento do cache da tabela de vendas
type Dataset struct {
	CacheTTL time.Duration `mapstructure:"dataset_cache_ttl"`
}

// DatasetRefresh controla o agendador opcional de pré-aquecimento do cache
type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SHEETS_BASE_URL", "https://sheets.googleapis.com/v4")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "your_spreadsheet_id")
	viper.SetDefault("SHEETS_RANGE", "Orders!A:Z")
	viper.SetDefault("SHEETS_API_KEY", "your_api_key") // ONLY LOCAL

	// A tabela completa é pequena; 10 minutos de validade evita refetch a cada interação
	viper.SetDefault("DATASET_CACHE_TTL", "10m")

	// Defaults para o pré-aquecimento do cache
	viper.SetDefault("DATASET_REFRESH_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)       // Habilitar atualização em background

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
