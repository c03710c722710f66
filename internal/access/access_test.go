// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"testing"

	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/assert"
)

func TestCanMutatePlace(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		creator   string
		want      Decision
	}{
		{name: "creator", requester: "u1", creator: "u1", want: Allow},
		{name: "other user", requester: "u2", creator: "u1", want: Deny},
		{name: "anonymous", requester: "", creator: "u1", want: Deny},
		{name: "place without creator", requester: "u1", creator: "", want: Deny},
		{name: "both empty", requester: "", creator: "", want: Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanMutatePlace(tt.requester, models.Place{ID: "p1", Creator: tt.creator})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == Allow, got.Allowed())
		})
	}
}

func TestDecision_ZeroValueDenies(t *testing.T) {
	var d Decision
	assert.False(t, d.Allowed())
	assert.Equal(t, "deny", d.String())
	assert.Equal(t, "allow", Allow.String())
}
