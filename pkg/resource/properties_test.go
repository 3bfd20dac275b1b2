package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvVariable(t *testing.T) {
	assert.Equal(t, "plain-value", resolveEnvVariable("plain-value"))
	assert.Equal(t, "default-value", resolveEnvVariable("${RESOURCE_TEST_MISSING:default-value}"))

	t.Setenv("RESOURCE_TEST_SET", "from-env")
	assert.Equal(t, "from-env", resolveEnvVariable("${RESOURCE_TEST_SET:default-value}"))
}

func TestResolveEnvVariable_EmptyDefault(t *testing.T) {
	// ${NAME:} resolves to the empty string when the variable is unset.
	assert.Equal(t, "", resolveEnvVariable("${RESOURCE_TEST_MISSING:}"))

	// An empty default must not stop the environment value from winning.
	t.Setenv("RESOURCE_TEST_PARAMS", "timezone=UTC")
	assert.Equal(t, "timezone=UTC", resolveEnvVariable("${RESOURCE_TEST_PARAMS:}"))
}

func TestInit_ResolvesEmptyDefaultFromEnvironment(t *testing.T) {
	t.Setenv("RESOURCE_TEST_PARAMS", "timezone=UTC")
	Init("configs/application.yml")

	assert.Equal(t, "timezone=UTC", GetString("app.params"))
	assert.Equal(t, "default-value", GetString("app.fallback"))
	assert.Equal(t, "plain-value", GetString("app.plain"))
}
