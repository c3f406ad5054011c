package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func TestParseCriteria(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		region    string
		want      *domain.FilterCriteria
		wantParam string
	}{
		{
			name: "sem parâmetros não filtra nada",
			want: &domain.FilterCriteria{},
		},
		{
			name:   "todos os parâmetros",
			start:  "2023-01-01",
			end:    "2023-01-31",
			region: "East",
			want: &domain.FilterCriteria{
				StartDate: ptr(day(2023, time.January, 1)),
				EndDate:   ptr(day(2023, time.January, 31)),
				Region:    ptr("East"),
			},
		},
		{
			name:   "região em branco é ignorada",
			region: "   ",
			want:   &domain.FilterCriteria{},
		},
		{
			name:      "start_date inválida",
			start:     "01/02/2023",
			wantParam: ParamStartDate,
		},
		{
			name:      "end_date inválida",
			start:     "2023-01-01",
			end:       "2023-13-01",
			wantParam: ParamEndDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCriteria(tt.start, tt.end, tt.region)
			if tt.wantParam != "" {
				var inputErr *domain.InputError
				require.ErrorAs(t, err, &inputErr)
				assert.Equal(t, tt.wantParam, inputErr.Param)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_NoCriteriaReturnsEverything(t *testing.T) {
	records := mixedRecords()

	assert.Equal(t, records, Filter(records, nil))
	assert.Equal(t, records, Filter(records, &domain.FilterCriteria{}))
}

func TestFilter_BoundariesAreInclusive(t *testing.T) {
	records := mixedRecords()

	filtered := Filter(records, &domain.FilterCriteria{
		StartDate: ptr(day(2023, time.January, 31)),
		EndDate:   ptr(day(2023, time.March, 1)),
	})

	ids := make([]string, 0, len(filtered))
	for _, r := range filtered {
		ids = append(ids, r.OrderID+"/"+r.Product)
	}
	assert.Equal(t, []string{"A1/Gadget", "A2/Widget", "A2/Gizmo", "A3/Widget"}, ids)
}

func TestFilter_SubsetSatisfiesAllPredicates(t *testing.T) {
	records := mixedRecords()
	regions := []string{"", "East", "North", "South", "Nowhere"}
	dates := []*time.Time{
		nil,
		ptr(day(2022, time.December, 24)),
		ptr(day(2023, time.January, 31)),
		ptr(day(2023, time.February, 14)),
		ptr(day(2023, time.March, 31)),
	}

	for _, region := range regions {
		for _, start := range dates {
			for _, end := range dates {
				criteria := &domain.FilterCriteria{StartDate: start, EndDate: end}
				if region != "" {
					criteria.Region = ptr(region)
				}

				filtered := Filter(records, criteria)

				expected := 0
				for _, r := range records {
					inStart := start == nil || !r.OrderDate.Before(*start)
					inEnd := end == nil || !r.OrderDate.After(*end)
					inRegion := region == "" || r.Region == region
					if inStart && inEnd && inRegion {
						expected++
						assert.Contains(t, filtered, r)
					}
				}
				assert.Len(t, filtered, expected)
			}
		}
	}
}

func TestFilter_RegionScenario(t *testing.T) {
	filtered := Filter(twoRecords(), &domain.FilterCriteria{Region: ptr("East")})

	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].OrderID)
}

func TestFilter_EmptyRangeIsNotAnError(t *testing.T) {
	filtered := Filter(twoRecords(), &domain.FilterCriteria{
		StartDate: ptr(day(2030, time.January, 1)),
	})

	assert.Empty(t, filtered)
}
