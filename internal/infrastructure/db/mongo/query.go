package mongo

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// ciContains builds a case-insensitive substring predicate. The needle is
// quoted so user input is matched literally, never as a pattern.
func ciContains(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

func optionsUniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}

// classifyStoreError maps store failures onto domain errors. Structured
// checks come first; the message substring matching below is a
// compatibility shim for error texts forwarded from upstream backends and
// breaks if their wording changes — do not extend it for new cases.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrUserExists
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "already exists"):
		return domain.ErrUserExists
	case strings.Contains(msg, "Foreign Key Violation"):
		return domain.ErrInvalidReference
	case strings.Contains(msg, "Invalid UUID"):
		return domain.ErrInvalidPartnerID
	}
	return err
}
