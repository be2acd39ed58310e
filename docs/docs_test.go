package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocListsRoutes(t *testing.T) {
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/", doc.BasePath)
	assert.Contains(t, doc.Paths["/.netlify/functions/contact"], "post")
	assert.Contains(t, doc.Paths["/v1/contact"], "post")
	assert.Contains(t, doc.Paths["/v1/health"], "get")
}
