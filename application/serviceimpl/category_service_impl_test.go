package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/domain/dto"
	"shopadmin/domain/models"
)

// fakeCategoryRepo is an in-memory CategoryRepository with the same
// contract as the postgres implementation: no cascades, zero-match
// replaces are silent, parents resolve one level deep on List.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
	order      []uuid.UUID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	r.categories[category.ID] = category
	r.order = append(r.order, category.ID)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(r.order))
	for _, id := range r.order {
		cat := r.categories[id]
		copied := *cat
		copied.Parent = nil
		if cat.ParentID != nil {
			if parent, ok := r.categories[*cat.ParentID]; ok {
				p := *parent
				p.Parent = nil
				copied.Parent = &p
			}
		}
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Replace(_ context.Context, id uuid.UUID, name string, parentID *uuid.UUID, properties models.PropertyGroups) (int64, error) {
	cat, ok := r.categories[id]
	if !ok {
		return 0, nil
	}
	cat.Name = name
	cat.ParentID = parentID
	cat.Properties = properties
	return 1, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeCategoryRepo) add(t *testing.T, name string, parentID *uuid.UUID, props models.PropertyGroups) uuid.UUID {
	t.Helper()
	cat := &models.Category{ID: uuid.New(), Name: name, ParentID: parentID, Properties: props}
	require.NoError(t, r.Create(context.Background(), cat))
	return cat.ID
}

func TestCategoryServiceCreate(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	parentID := repo.add(t, "Clothing", nil, nil)

	tests := []struct {
		name       string
		req        *dto.CreateCategoryRequest
		wantParent *uuid.UUID
	}{
		{
			name:       "root category",
			req:        &dto.CreateCategoryRequest{Name: "Electronics"},
			wantParent: nil,
		},
		{
			name:       "child of existing parent",
			req:        &dto.CreateCategoryRequest{Name: "Shirts", ParentCategory: parentID.String()},
			wantParent: &parentID,
		},
		{
			name:       "unparseable parent stored as absent",
			req:        &dto.CreateCategoryRequest{Name: "Misc", ParentCategory: "not-a-uuid"},
			wantParent: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.Create(ctx, tt.req)
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, tt.req.Name, created.Name)
			assert.Equal(t, tt.wantParent, created.ParentID)
		})
	}
}

func TestCategoryServiceCreateKeepsSoftParentRef(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	// A well-formed parent id is stored even when no such category exists.
	ghost := uuid.New()
	created, err := svc.Create(ctx, &dto.CreateCategoryRequest{
		Name:           "Orphan",
		ParentCategory: ghost.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, created.ParentID)
	assert.Equal(t, ghost, *created.ParentID)

	// The dangling parent resolves to nil on listing.
	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Nil(t, categories[0].Parent)
}

func TestCategoryServiceUpdate(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	id := repo.add(t, "Shoes", nil, models.PropertyGroups{{Name: "size", Values: "40,41,42"}})

	ack, err := svc.Update(ctx, &dto.UpdateCategoryRequest{
		ID:   id,
		Name: "Footwear",
	})
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, int64(1), ack.MatchedCount)

	// Full replacement: the omitted properties were cleared, not kept.
	updated := repo.categories[id]
	assert.Equal(t, "Footwear", updated.Name)
	assert.Nil(t, updated.ParentID)
	assert.Empty(t, updated.Properties)
}

func TestCategoryServiceUpdateMissingIDIsNoOp(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	ack, err := svc.Update(context.Background(), &dto.UpdateCategoryRequest{
		ID:   uuid.New(),
		Name: "Ghost",
	})
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, int64(0), ack.MatchedCount)
	assert.Equal(t, int64(0), ack.ModifiedCount)
}

func TestCategoryServiceDeleteLeavesDanglingChildren(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	parentID := repo.add(t, "Clothing", nil, nil)
	childID := repo.add(t, "Shirts", &parentID, nil)

	require.NoError(t, svc.Delete(ctx, parentID))

	// The child survives with its reference intact but unresolvable.
	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, childID, categories[0].ID)
	require.NotNil(t, categories[0].ParentID)
	assert.Equal(t, parentID, *categories[0].ParentID)
	assert.Nil(t, categories[0].Parent)
}

func TestResolveProperties(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	rootID := repo.add(t, "Clothing", nil, models.PropertyGroups{
		{Name: "material", Values: "cotton,wool"},
	})
	midID := repo.add(t, "Shirts", &rootID, models.PropertyGroups{
		{Name: "sleeve", Values: "short,long"},
	})
	leafID := repo.add(t, "T-Shirts", &midID, models.PropertyGroups{
		{Name: "print", Values: "plain,graphic"},
	})

	danglingParent := uuid.New()
	orphanID := repo.add(t, "Orphan", &danglingParent, models.PropertyGroups{
		{Name: "color", Values: "red"},
	})

	tests := []struct {
		name string
		id   uuid.UUID
		want models.PropertyGroups
	}{
		{
			name: "root has only its own groups",
			id:   rootID,
			want: models.PropertyGroups{{Name: "material", Values: "cotton,wool"}},
		},
		{
			name: "leaf accumulates nearest ancestor first",
			id:   leafID,
			want: models.PropertyGroups{
				{Name: "print", Values: "plain,graphic"},
				{Name: "sleeve", Values: "short,long"},
				{Name: "material", Values: "cotton,wool"},
			},
		},
		{
			name: "unknown id yields empty, not error",
			id:   uuid.New(),
			want: models.PropertyGroups{},
		},
		{
			name: "dangling parent truncates the walk",
			id:   orphanID,
			want: models.PropertyGroups{{Name: "color", Values: "red"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ResolveProperties(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePropertiesTerminatesOnCycle(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	// Corrupted data: a <-> b parent cycle. The walk must visit each node
	// once and stop.
	aID := uuid.New()
	bID := uuid.New()
	require.NoError(t, repo.Create(ctx, &models.Category{
		ID: aID, Name: "A", ParentID: &bID,
		Properties: models.PropertyGroups{{Name: "a", Values: "1"}},
	}))
	require.NoError(t, repo.Create(ctx, &models.Category{
		ID: bID, Name: "B", ParentID: &aID,
		Properties: models.PropertyGroups{{Name: "b", Values: "2"}},
	}))

	got, err := svc.ResolveProperties(ctx, aID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyGroups{
		{Name: "a", Values: "1"},
		{Name: "b", Values: "2"},
	}, got)
}

func TestResolvePropertiesSelfParentTerminates(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, repo.Create(ctx, &models.Category{
		ID: id, Name: "Self", ParentID: &id,
		Properties: models.PropertyGroups{{Name: "x", Values: "y"}},
	}))

	got, err := svc.ResolveProperties(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyGroups{{Name: "x", Values: "y"}}, got)
}
