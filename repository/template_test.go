package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/pkg/integration"
)

type templateTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Template
}

func newTemplateTest() *templateTest {
	tc := integration.NewTestCase()
	tc.Truncate("outreach_template")
	return &templateTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewTemplate(),
	}
}

func (tt *templateTest) insert(t *testing.T, tmpl model.OutreachTemplate) int64 {
	var id int64
	err := tt.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = tt.repo.Insert(ctx, tmpl)
		return err
	})
	require.NoError(t, err)
	return id
}

func TestTemplate(t *testing.T) {
	tt := newTemplateTest()

	first := tt.insert(t, model.OutreachTemplate{
		Name:        "first contact",
		Content:     "{인플루언서명}님 안녕하세요",
		SeedingType: model.ScopeAll,
		ContentType: model.ScopeAll,
		Brand:       model.ScopeAll,
	})
	second := tt.insert(t, model.OutreachTemplate{
		Name:        "paid offer",
		Content:     "{원고비}원 제안드립니다",
		SeedingType: "paid",
		ContentType: model.ScopeAll,
		Brand:       model.ScopeAll,
	})

	readCtx := tt.provider.Readonly(newContext())

	got, err := tt.repo.Get(readCtx, first)
	require.NoError(t, err)
	assert.Equal(t, "first contact", got.Name)
	assert.Equal(t, int64(0), got.UsageCount)

	//---------------------------------------
	// IncrementUsage reorders the list
	//---------------------------------------
	err = tt.provider.Transact(newContext(), func(ctx context.Context) error {
		return tt.repo.IncrementUsage(ctx, second)
	})
	require.NoError(t, err)

	list, err := tt.repo.List(readCtx)
	require.NoError(t, err)
	require.Equal(t, 2, len(list))
	assert.Equal(t, "paid offer", list[0].Name)
	assert.Equal(t, int64(1), list[0].UsageCount)
	assert.Equal(t, "first contact", list[1].Name)

	//---------------------------------------
	// Update keeps the usage counter
	//---------------------------------------
	got.Content = "updated content"
	err = tt.provider.Transact(newContext(), func(ctx context.Context) error {
		return tt.repo.Update(ctx, got)
	})
	require.NoError(t, err)

	got, err = tt.repo.Get(readCtx, first)
	require.NoError(t, err)
	assert.Equal(t, "updated content", got.Content)
	assert.Equal(t, int64(0), got.UsageCount)

	//---------------------------------------
	// Delete
	//---------------------------------------
	err = tt.provider.Transact(newContext(), func(ctx context.Context) error {
		return tt.repo.Delete(ctx, first)
	})
	require.NoError(t, err)

	list, err = tt.repo.List(readCtx)
	require.NoError(t, err)
	assert.Equal(t, 1, len(list))
}
