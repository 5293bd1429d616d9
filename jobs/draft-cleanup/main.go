package main

import (
	"log/slog"
	"time"

	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/utils"
)

func main() {
	slog.Info("Starting draft cleanup job")
	start := time.Now()

	retention, err := utils.ParseDurationString(conf.DraftRetention)
	if err != nil {
		slog.Error("Invalid draft retention config", slog.String("error", err.Error()))
		return
	}

	notUpdatedSince := time.Now().Add(-retention).Unix()
	count, err := portalDBService.DeleteStaleDraftModifications(notUpdatedSince)
	if err != nil {
		slog.Error("Failed to delete stale draft modifications", slog.String("error", err.Error()))
		return
	}

	slog.Info("Draft cleanup job completed",
		slog.Int64("removedDrafts", count),
		slog.String("duration", time.Since(start).String()))
}
