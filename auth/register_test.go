package auth

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

// Concurrent duplicate registrations lose the insert race; the translated
// unique-violation must map to a conflict, not a server error.
func TestIsDuplicateErr(t *testing.T) {
	if !isDuplicateErr(gorm.ErrDuplicatedKey) {
		t.Error("bare duplicated-key error not recognized")
	}
	if !isDuplicateErr(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)) {
		t.Error("wrapped duplicated-key error not recognized")
	}
	if isDuplicateErr(gorm.ErrRecordNotFound) {
		t.Error("not-found misclassified as duplicate")
	}
	if isDuplicateErr(errors.New("connection reset")) {
		t.Error("unrelated error misclassified as duplicate")
	}
}
