package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicebuddy/models"
)

func TestEmbeddedCatalogueCoversAllCategories(t *testing.T) {
	for _, cat := range []models.Category{
		models.CategoryJobLoss,
		models.CategoryBirth,
		models.CategoryDisability,
		models.CategoryAgePension,
		models.CategoryDisaster,
		models.CategoryCarer,
		models.CategoryHealthcare,
	} {
		assert.NotEmpty(t, Services(cat), "category %s has no services", cat)
	}
}

func TestServicesOrderIsStable(t *testing.T) {
	services := Services(models.CategoryJobLoss)
	require.GreaterOrEqual(t, len(services), 2)
	assert.Equal(t, "sa_jobseeker", services[0].ID)
	assert.Equal(t, "rent_assistance", services[1].ID)
}

func TestEmbeddedRecordsAreComplete(t *testing.T) {
	for _, cat := range Categories() {
		for _, svc := range Services(cat) {
			assert.NotEmpty(t, svc.ID, "%s: missing id", cat)
			assert.NotEmpty(t, svc.Title, "%s/%s: missing title", cat, svc.ID)
			assert.NotEmpty(t, svc.Agency, "%s/%s: missing agency", cat, svc.ID)
			assert.NotEmpty(t, svc.Eligibility, "%s/%s: missing eligibility", cat, svc.ID)
			assert.NotEmpty(t, svc.Phone, "%s/%s: missing phone", cat, svc.ID)
			assert.NotEmpty(t, svc.ApplyURL, "%s/%s: missing apply url", cat, svc.ID)
		}
	}
}

func TestServicesForAllPreservesOrder(t *testing.T) {
	out := ServicesForAll([]models.Category{models.CategoryBirth, models.CategoryJobLoss})
	require.Len(t, out, len(Services(models.CategoryBirth))+len(Services(models.CategoryJobLoss)))
	assert.Equal(t, "medicare_enrolment", out[0].ID)
	assert.Equal(t, "sa_jobseeker", out[len(Services(models.CategoryBirth))].ID)
}

func TestLoadRejectsInvalidCatalogue(t *testing.T) {
	// Restore the embedded catalogue however the subtests leave it.
	t.Cleanup(func() { require.NoError(t, Load(rawCatalog)) })

	err := Load([]byte("job_loss: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no services")

	err = Load([]byte("job_loss:\n  - title: Missing ID\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id or title")

	err = Load([]byte("not: [valid: yaml"))
	require.Error(t, err)
}
