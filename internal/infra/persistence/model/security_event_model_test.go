package model

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/internal/domain/entity"
)

func TestSecurityEventModel_ColumnWidthsMatchEventBounds(t *testing.T) {
	modelType := reflect.TypeOf(SecurityEventModel{})

	tests := []struct {
		field string
		width int
	}{
		{field: "Email", width: entity.MaxEventEmailLength},
		{field: "SourceIdentifier", width: entity.MaxEventIdentifierLength},
		{field: "RequestID", width: entity.MaxEventRequestIDLength},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			field, ok := modelType.FieldByName(tt.field)
			require.True(t, ok)
			assert.Contains(t, field.Tag.Get("gorm"), "type:varchar("+strconv.Itoa(tt.width)+")")
		})
	}
}
