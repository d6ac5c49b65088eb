package services

import (
	"sort"
	"testing"

	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTableService(db *gorm.DB) *TableService {
	return NewTableService(db,
		repository.NewTableRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func TestGenerate_FillsMissingNumbers(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(db)

	rest := seedRestaurant(t, db, "gen-place", true, false)
	existing := seedTable(t, db, rest, 3, "keepme", true)

	created, err := svc.Generate(rest.OwnerID, rest.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 9, created) // 1,2,4..10

	var tables []entity.RestaurantTable
	require.NoError(t, db.Where("restaurant_id = ?", rest.ID).Find(&tables).Error)
	require.Len(t, tables, 10)

	numbers := make([]int, 0, len(tables))
	codes := make(map[string]bool)
	for _, tbl := range tables {
		numbers = append(numbers, tbl.TableNumber)
		assert.NotEmpty(t, tbl.Code)
		codes[tbl.Code] = true
		if tbl.TableNumber == 3 {
			assert.Equal(t, "keepme", tbl.Code)
			assert.Equal(t, existing.ID, tbl.ID)
		}
	}
	sort.Ints(numbers)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, numbers)
	assert.Len(t, codes, 10) // no duplicate codes among the generated set

	// regenerating is a no-op
	created, err = svc.Generate(rest.OwnerID, rest.ID, 10)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestGenerate_RequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(db)

	rest := seedRestaurant(t, db, "owned-place", true, false)
	intruder := seedUser(t, db, "intruder@example.com", entity.RoleOwner)

	_, err := svc.Generate(intruder.ID, rest.ID, 5)
	assert.ErrorIs(t, err, ErrForbidden)

	var count int64
	db.Model(&entity.RestaurantTable{}).Count(&count)
	assert.Zero(t, count)
}

func TestGenerate_CountBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(db)

	rest := seedRestaurant(t, db, "bounds-place", true, false)

	_, err := svc.Generate(rest.OwnerID, rest.ID, 0)
	assert.Error(t, err)
	_, err = svc.Generate(rest.OwnerID, rest.ID, 1000)
	assert.Error(t, err)
}

func TestResolve_ScopedToRestaurant(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(db)

	rest := seedRestaurant(t, db, "resolve-place", true, false)
	other := seedRestaurant(t, db, "other-place", true, false)
	seedTable(t, db, rest, 7, "codeseven", true)
	seedTable(t, db, rest, 8, "codeeight", false)
	seedTable(t, db, other, 1, "elsewhere", true)

	n, err := svc.Resolve(rest.ID, "codeseven")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 7, *n)

	// inactive table does not resolve
	n, err = svc.Resolve(rest.ID, "codeeight")
	require.NoError(t, err)
	assert.Nil(t, n)

	// code exists globally but under another restaurant
	n, err = svc.Resolve(rest.ID, "elsewhere")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = svc.Resolve(rest.ID, "")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestSetActive_TogglesWithoutDeleting(t *testing.T) {
	db := setupTestDB(t)
	svc := newTableService(db)

	rest := seedRestaurant(t, db, "toggle-place", true, false)
	tbl := seedTable(t, db, rest, 1, "togglecode", true)

	require.NoError(t, svc.SetActive(rest.OwnerID, tbl.ID, false))

	n, err := svc.Resolve(rest.ID, "togglecode")
	require.NoError(t, err)
	assert.Nil(t, n)

	require.NoError(t, svc.SetActive(rest.OwnerID, tbl.ID, true))
	n, err = svc.Resolve(rest.ID, "togglecode")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 1, *n)
}
