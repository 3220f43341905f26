package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	s := New()

	models := s.Models()
	require.Len(t, models, 10)
	assert.Equal(t, 10, s.Len())
	assert.Equal(t, "ann", models[0].Key)
	assert.Equal(t, "svm", models[9].Key)

	seen := map[string]bool{}
	for _, m := range models {
		assert.False(t, seen[m.Key], "duplicate key %q", m.Key)
		seen[m.Key] = true
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.BestFor)
		assert.NotEmpty(t, m.Datasets, "datasets for %s", m.Key)
		assert.NotEmpty(t, m.UseCases, "use cases for %s", m.Key)
		assert.NotEmpty(t, m.Icon)
		assert.NotEmpty(t, m.Accent)
	}

	tips := s.Tips()
	require.Len(t, tips, 5)
	assert.Equal(t, "De-noise & Fix Errors", tips[0].Title)
	assert.Equal(t, "Benefits", tips[4].Title)
}

func TestCatalogOrderIsDeterministic(t *testing.T) {
	a, b := New().Models(), New().Models()
	assert.Equal(t, a, b)

	keys := make([]string, 0, len(a))
	for _, m := range a {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"ann", "resnet", "densenet", "transfer", "knn", "logreg", "mlp", "nb", "rf", "svm"}, keys)
}

func TestCatalogIsNotMutatedThroughAccessors(t *testing.T) {
	s := New()

	models := s.Models()
	models[0].Name = "changed"
	models[0].Datasets[0] = "changed"
	models = append(models[:1], models[2:]...)

	tips := s.Tips()
	tips[0].Title = "changed"

	fresh := s.Models()
	assert.Equal(t, "Artificial Neural Networks (ANN)", fresh[0].Name)
	assert.Equal(t, "MNIST", fresh[0].Datasets[0])
	assert.Equal(t, "resnet", fresh[1].Key)
	assert.Equal(t, "De-noise & Fix Errors", s.Tips()[0].Title)
}

func TestModelLookup(t *testing.T) {
	s := New()

	m, ok := s.Model("rf")
	require.True(t, ok)
	assert.Equal(t, "Random Forest", m.Name)

	m.UseCases[0] = "changed"
	again, _ := s.Model("rf")
	assert.Equal(t, "Fraud/churn", again.UseCases[0])

	_, ok = s.Model("missing")
	assert.False(t, ok)
}
