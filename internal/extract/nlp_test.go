package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevikaReddi/skill-sync-pro/internal/extract"
)

func TestNLP_IncludesGazetteerHits(t *testing.T) {
	t.Parallel()
	n, err := extract.NewNLP(loadTaxonomy(t))
	require.NoError(t, err)

	mentions, err := n.Extract(context.Background(), "Built services in Python with PostgreSQL and Docker.")
	require.NoError(t, err)

	found := map[string]bool{}
	for _, m := range mentions {
		found[m.Raw] = true
	}
	assert.True(t, found["Python"])
	assert.True(t, found["PostgreSQL"])
	assert.True(t, found["Docker"])
}

func TestNLP_OffsetsPointIntoText(t *testing.T) {
	t.Parallel()
	n, err := extract.NewNLP(loadTaxonomy(t))
	require.NoError(t, err)

	text := "Team uses Kubernetes for deployments and Terraform for infrastructure."
	mentions, err := n.Extract(context.Background(), text)
	require.NoError(t, err)
	require.NotEmpty(t, mentions)
	for _, m := range mentions {
		assert.Equal(t, m.Raw, text[m.Start:m.End])
	}
}

func TestNLP_FiltersGenericVocabulary(t *testing.T) {
	t.Parallel()
	n, err := extract.NewNLP(loadTaxonomy(t))
	require.NoError(t, err)

	mentions, err := n.Extract(context.Background(), "Years of experience in a team role as a developer.")
	require.NoError(t, err)
	for _, m := range mentions {
		assert.NotContains(t, []string{"experience", "team", "role", "developer", "years"}, m.Raw)
	}
}

func TestNLP_Name(t *testing.T) {
	t.Parallel()
	n, err := extract.NewNLP(loadTaxonomy(t))
	require.NoError(t, err)
	assert.Equal(t, "nlp", n.Name())
}
