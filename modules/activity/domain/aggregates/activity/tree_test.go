package activity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
)

func TestDescendantClosure(t *testing.T) {
	root := activity.New("R", nil)
	rootSID := root.SID()
	c1 := activity.New("C1", &rootSID)
	c1SID := c1.SID()
	c2 := activity.New("C2", &rootSID)
	g1 := activity.New("G1", &c1SID)
	other := activity.New("Other", nil)

	index := activity.ChildrenIndex([]activity.Activity{root, c1, c2, g1, other})

	t.Run("root with descendants", func(t *testing.T) {
		got := activity.DescendantClosure(root.SID(), index)
		assert.ElementsMatch(t, []uuid.UUID{root.SID(), c1.SID(), c2.SID(), g1.SID()}, got)
	})

	t.Run("leaf", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{g1.SID()}, activity.DescendantClosure(g1.SID(), index))
	})

	t.Run("repeated edges are listed once", func(t *testing.T) {
		dup := map[uuid.UUID][]uuid.UUID{rootSID: {c1SID, c1SID}}
		assert.Equal(t, []uuid.UUID{rootSID, c1SID}, activity.DescendantClosure(rootSID, dup))
	})
}

func TestActivity_Rename(t *testing.T) {
	parent := uuid.New()
	a := activity.New("  Еда ", &parent)
	assert.Equal(t, "Еда", a.Name())

	renamed := a.Rename("Food")
	assert.Equal(t, "Food", renamed.Name())
	assert.Equal(t, a.SID(), renamed.SID())
	assert.Equal(t, parent, *renamed.ParentSID())
	assert.Equal(t, "Еда", a.Name())
}

func TestCreateDTO_Ok(t *testing.T) {
	dto := &activity.CreateDTO{Name: "   "}
	err := dto.Ok()
	assert.Error(t, err)

	dto = &activity.CreateDTO{Name: " Ремонт "}
	assert.NoError(t, dto.Ok())
	assert.Equal(t, "Ремонт", dto.Name)
}
