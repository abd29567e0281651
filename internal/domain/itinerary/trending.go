package itinerary

import (
	"strings"

	apperrors "github.com/yanqian/cinematic-itinerary/pkg/errors"
	"github.com/yanqian/cinematic-itinerary/pkg/util"
)

func trendingKey(req Request) string {
	location := util.NormalizeKey(req.Location)
	if location == "" {
		return ""
	}
	return location + "|" + util.NormalizeKey(string(req.Vibe))
}

func trendingDisplay(req Request) string {
	return strings.TrimSpace(req.Location) + " · " + string(req.Vibe)
}

func storeError(message string, err error) error {
	return apperrors.Wrap(apperrors.CodeStoreError, message, err)
}
