package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("THROTTLE_USER_PER_MIN", "oops")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := LoadConfig()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 60, cfg.ThrottleUserPerMin)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestGetDurationRejectsNonPositive(t *testing.T) {
	t.Setenv("JWT_TTL", "-1h")
	assert.Equal(t, time.Hour, getDuration("JWT_TTL", time.Hour))
}
