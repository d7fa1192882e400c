package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition_AtLeast(t *testing.T) {
	assert.True(t, ConditionMint.AtLeast(ConditionExcellent))
	assert.True(t, ConditionExcellent.AtLeast(ConditionExcellent))
	assert.False(t, ConditionGood.AtLeast(ConditionExcellent))
	assert.False(t, ConditionPoor.AtLeast(ConditionPlayed))
	assert.False(t, Condition("XX").AtLeast(ConditionPoor))
}

func TestParseCondition(t *testing.T) {
	c, err := ParseCondition(" nm ")
	require.NoError(t, err)
	assert.Equal(t, ConditionNearMint, c)

	_, err = ParseCondition("mint-ish")
	assert.Error(t, err)
}

func TestLanguageID(t *testing.T) {
	id, ok := LanguageID("German")
	assert.True(t, ok)
	assert.Equal(t, 3, id)

	id, ok = LanguageID("Klingon")
	assert.False(t, ok)
	assert.Equal(t, 2, id)
	assert.Equal(t, "French", LanguageName(id))
	assert.Equal(t, "", LanguageName(42))
}

func TestMarketExtract_FoilSectionPresence(t *testing.T) {
	var extract MarketExtract
	assert.False(t, extract.HasFoilSection())
	assert.Nil(t, extract.Comparables(true))

	extract.SetFoilArticles(nil)
	assert.True(t, extract.HasFoilSection())

	data, err := json.Marshal(extract)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"articles_foil":[]`)

	var decoded MarketExtract
	require.NoError(t, json.Unmarshal([]byte(`{"articles":[],"info":{"idProduct":1,"enName":"x"}}`), &decoded))
	assert.False(t, decoded.HasFoilSection())
}

func TestRelativeDiff(t *testing.T) {
	assert.Equal(t, -9.09, RelativeDiff(11, 10))
	assert.Equal(t, 81.82, RelativeDiff(5.5, 10))
	assert.True(t, math.IsNaN(RelativeDiff(0, 10)))
	assert.True(t, math.IsNaN(RelativeDiff(5, math.NaN())))
}
