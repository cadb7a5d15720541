package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"defaults", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative page", PaginateQuery{Page: -3, Limit: 10}, DefaultPage, 10},
		{"limit clamped", PaginateQuery{Page: 2, Limit: 500}, 2, MaxLimit},
		{"valid untouched", PaginateQuery{Page: 4, Limit: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Adjust()
			if tt.in.Page != tt.wantPage || tt.in.Limit != tt.wantLimit {
				t.Errorf("Adjust() = page %d limit %d, want page %d limit %d",
					tt.in.Page, tt.in.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PaginateQuery{Page: 3, Limit: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestToResponse(t *testing.T) {
	p := Paginator{Total: 45, Count: 20, PerPage: 20, CurrentPage: 2}
	resp := p.ToResponse()

	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
	if !resp.HasNext || !resp.HasPrev {
		t.Errorf("HasNext = %v HasPrev = %v, want both true", resp.HasNext, resp.HasPrev)
	}

	empty := Paginator{PerPage: 20, CurrentPage: 1}.ToResponse()
	if empty.TotalPages != 0 || empty.HasNext {
		t.Errorf("empty result = %+v", empty)
	}
}
