package memoryImp_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"hempdb/entities"
	"hempdb/pkg/catalog/memoryImp"
	"hempdb/pkg/catalog/repository"
	"hempdb/pkg/catalog/storagetest"
)

func TestStorageContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) repository.Storage {
		return memoryImp.New()
	})
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	st := memoryImp.New()
	pt := entities.PlantType{Name: "Fiber Hemp", Description: "fiber cultivar"}
	require.NoError(t, st.CreatePlantType(&pt))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = st.CreatePlantPart(&entities.PlantPart{Name: "Stalk", Description: "stem", PlantTypeID: pt.ID})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = st.AllPlantParts()
				_, _ = st.PlantPartsByType(pt.ID)
			}
		}()
	}
	wg.Wait()

	parts, err := st.AllPlantParts()
	require.NoError(t, err)
	require.Len(t, parts, 8*50)
	seen := map[uint]bool{}
	for _, p := range parts {
		require.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	st := memoryImp.New()
	pt := entities.PlantType{Name: "Grain Hemp", Description: "seed cultivar"}
	require.NoError(t, st.CreatePlantType(&pt))

	got, err := st.PlantTypeByID(pt.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := st.PlantTypeByID(pt.ID)
	require.NoError(t, err)
	require.Equal(t, "Grain Hemp", again.Name)
}
