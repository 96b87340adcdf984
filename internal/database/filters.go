package database

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// searchFilter matches query as a literal, case-insensitive substring of
// serviceName. An empty query matches every document.
func searchFilter(query string) bson.M {
	if strings.TrimSpace(query) == "" {
		return bson.M{}
	}
	return bson.M{
		"serviceName": bson.M{
			"$regex":   regexp.QuoteMeta(query),
			"$options": "i",
		},
	}
}

func providerFilter(email string) bson.M {
	return bson.M{"providerEmail": email}
}

func customerFilter(email string) bson.M {
	return bson.M{"userEmail": email}
}
