package model

import "time"

// Serializer is implemented by every entity exposed over the API.
type Serializer interface {
	Serialize() map[string]any
}

// SerializeAll always returns a non-nil slice so empty tables encode as [].
func SerializeAll[T Serializer](rows []T) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Serialize())
	}
	return out
}

const isoDate = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(isoDate)
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(isoDate, s)
}

func (u User) PrimaryKey() uint      { return u.ID }
func (c Character) PrimaryKey() uint { return c.ID }
func (p Planet) PrimaryKey() uint    { return p.ID }
func (v Vehicle) PrimaryKey() uint   { return v.ID }
func (f Favorite) PrimaryKey() uint  { return f.ID }
