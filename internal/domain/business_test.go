package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBusiness() Business {
	return Business{
		ID:                  "biz-1",
		WorkingDays:         []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		OpeningTime:         "09:00",
		ClosingTime:         "12:00",
		SlotDurationMinutes: 30,
	}
}

func TestBusiness_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Business)
		wantErr bool
	}{
		{name: "valid", mutate: func(b *Business) {}},
		{name: "unparsable opening", mutate: func(b *Business) { b.OpeningTime = "9am" }, wantErr: true},
		{name: "unparsable closing", mutate: func(b *Business) { b.ClosingTime = "" }, wantErr: true},
		{name: "opening equals closing", mutate: func(b *Business) { b.ClosingTime = "09:00" }, wantErr: true},
		{name: "opening after closing", mutate: func(b *Business) { b.OpeningTime = "13:00" }, wantErr: true},
		{name: "zero slot", mutate: func(b *Business) { b.SlotDurationMinutes = 0 }, wantErr: true},
		{name: "negative slot", mutate: func(b *Business) { b.SlotDurationMinutes = -15 }, wantErr: true},
		{name: "bad weekday", mutate: func(b *Business) { b.WorkingDays = []time.Weekday{9} }, wantErr: true},
		{name: "no working days is allowed", mutate: func(b *Business) { b.WorkingDays = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBusiness()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBusiness_WorksOn(t *testing.T) {
	b := validBusiness()
	assert.True(t, b.WorksOn(time.Monday))
	assert.False(t, b.WorksOn(time.Saturday))
}
