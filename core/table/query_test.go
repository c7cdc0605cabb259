package table

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      State
		wantEvent Event
		wantParam string
	}{
		{
			name:  "defaults",
			query: "",
			want:  State{Page: 1, PageSize: 10},
		},
		{
			name:  "full state",
			query: "search=chen&ordering=-balance&page=2&page_size=5",
			want:  State{Search: "chen", Sort: &Sort{Key: "balance", Direction: Desc}, Page: 2, PageSize: 5},
		},
		{
			name:  "first ordering field only",
			query: "ordering=name,-id",
			want:  State{Sort: &Sort{Key: "name", Direction: Asc}, Page: 1, PageSize: 10},
		},
		{
			name:  "empty ordering clears the sort",
			query: "ordering=-",
			want:  State{Page: 1, PageSize: 10},
		},
		{
			name:      "sort action",
			query:     "ordering=name&action=sort:name",
			want:      State{Sort: &Sort{Key: "name", Direction: Asc}, Page: 1, PageSize: 10},
			wantEvent: SortToggled{Key: "name"},
		},
		{
			name:      "navigation action",
			query:     "page=3&action=next",
			want:      State{Page: 3, PageSize: 10},
			wantEvent: Navigated{Nav: Next},
		},
		{
			name:      "page action",
			query:     "action=page:4",
			want:      State{Page: 1, PageSize: 10},
			wantEvent: PageRequested{Page: 4},
		},
		{name: "invalid page", query: "page=abc", wantParam: PageParam},
		{name: "page zero", query: "page=0", wantParam: PageParam},
		{name: "page size too big", query: "page_size=1000", wantParam: PageSizeParam},
		{name: "unknown action", query: "action=jump", wantParam: ActionParam},
		{name: "sort without key", query: "action=sort:", wantParam: ActionParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, ev, err := ParseQuery(q, 10)
			if tt.wantParam != "" {
				qErr, ok := err.(*QueryError)
				require.True(t, ok, "ParseQuery() error = %v, want a *QueryError", err)
				assert.Equal(t, tt.wantParam, qErr.Param)
				return
			}
			require.NoError(t, err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuery() = %+v, want %+v", got, tt.want)
			}
			if !reflect.DeepEqual(ev, tt.wantEvent) {
				t.Errorf("ParseQuery() event = %#v, want %#v", ev, tt.wantEvent)
			}
		})
	}
}

func TestState_Values(t *testing.T) {
	s := State{Search: "web dev", Sort: &Sort{Key: "balance", Direction: Desc}, Page: 3, PageSize: 5}
	assert.Equal(t, "ordering=-balance&page=3&page_size=5&search=web+dev", s.Values().Encode())
	assert.Equal(t, "page_size=10", NewState(10).Values().Encode())

	// decoding what was encoded gives the state back
	got, ev, err := ParseQuery(s.Values(), 10)
	require.NoError(t, err)
	assert.Nil(t, ev)
	assert.Equal(t, s, got)
}
