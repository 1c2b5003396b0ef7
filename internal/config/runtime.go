package config

import (
	"os"
	"strconv"
)

type Runtime struct {
	HTTPAddr      string
	CacheMaxItems int
	ObsBuffer     int
	GateCond      string
}

func Load() Runtime {
	return Runtime{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		CacheMaxItems: getenvInt("REQ_CACHE_MAX_ITEMS", 4096, 1),
		ObsBuffer:     getenvInt("REQ_OBS_BUFFER", 4096, 1),
		GateCond:      os.Getenv("REQ_GATE_COND"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback, min int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}
