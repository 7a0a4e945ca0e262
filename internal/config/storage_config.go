package config

import "strings"

type TokenStoreType string

const (
	TokenStoreFile   TokenStoreType = "file"
	TokenStoreRedis  TokenStoreType = "redis"
	TokenStoreMemory TokenStoreType = "memory"
)

type StorageConfig interface {
	GetTokenStore() TokenStoreType
	GetTokenFile() string
	GetTokenKey() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
}

// Storage configures where the session token is persisted between runs.
type Storage struct {
	TokenStore    string `env:"TOKEN_STORE"    envDefault:"file"`
	TokenFile     string `env:"TOKEN_FILE"     envDefault:"./data/token.json"`
	TokenKey      string `env:"TOKEN_KEY"      envDefault:"token"`
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
}

var _ StorageConfig = Storage{}

func (s Storage) GetTokenStore() TokenStoreType {
	return TokenStoreType(s.TokenStore)
}

func (s Storage) GetTokenFile() string {
	return s.TokenFile
}

func (s Storage) GetTokenKey() string {
	return s.TokenKey
}

func (s Storage) GetRedisAddr() string {
	return s.RedisAddr
}

func (s Storage) GetRedisPassword() string {
	return s.RedisPassword
}

func (s Storage) GetRedisDB() int {
	return s.RedisDB
}

func (s *Storage) sanitize() {
	switch TokenStoreType(strings.ToLower(s.TokenStore)) {
	case TokenStoreRedis:
		s.TokenStore = string(TokenStoreRedis)
	case TokenStoreMemory:
		s.TokenStore = string(TokenStoreMemory)
	default:
		s.TokenStore = string(TokenStoreFile)
	}
	if s.TokenKey == "" {
		s.TokenKey = "token"
	}
}
