package cron

import (
	"context"
	"strings"
	"time"

	"github.com/hallbook/hallbook/clients"
	"github.com/hallbook/hallbook/config"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/availability_models"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// availabilityTTL gives the cache room for two missed refreshes before a
// calendar degrades to the open-world default.
const availabilityTTL = 30 * time.Minute

// AvailabilityRefresher periodically re-derives per-venue availability
// tables from the booking store, so rendering a month costs one cache read
// instead of an upstream call per day cell.
type AvailabilityRefresher struct {
	API      clients.BookingAPI
	RDB      *redis.Client
	AdminIDs []string

	scheduler *cron.Cron
}

// NewAvailabilityRefresher builds a refresher for the admin accounts listed
// in AVAILABILITY_ADMIN_IDS (comma separated).
func NewAvailabilityRefresher(api clients.BookingAPI, rdb *redis.Client) *AvailabilityRefresher {
	var adminIDs []string
	for _, id := range strings.Split(config.GetEnv("AVAILABILITY_ADMIN_IDS", ""), ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			adminIDs = append(adminIDs, trimmed)
		}
	}
	return &AvailabilityRefresher{API: api, RDB: rdb, AdminIDs: adminIDs}
}

// Start schedules the refresh job and runs one refresh immediately so the
// cache is warm before the first calendar render.
func (r *AvailabilityRefresher) Start() {
	if len(r.AdminIDs) == 0 {
		logger.WarnLogger.Warn("AVAILABILITY_ADMIN_IDS not set; availability cache refresh disabled")
		return
	}

	spec := config.GetEnv("AVAILABILITY_REFRESH_CRON", "@every 5m")
	r.scheduler = cron.New()
	if _, err := r.scheduler.AddFunc(spec, r.RefreshAll); err != nil {
		logger.ErrorLogger.Errorf("Invalid availability refresh schedule %q: %v", spec, err)
		return
	}
	r.scheduler.Start()
	logger.InfoLogger.Infof("Availability refresh scheduled (%s) for %d admin(s)", spec, len(r.AdminIDs))

	go r.RefreshAll()
}

// Stop halts the schedule. Safe to call when Start never ran.
func (r *AvailabilityRefresher) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}

// RefreshAll rebuilds the availability table of every venue that has
// bookings under the configured admins. Failures skip the admin and keep
// the previous cache entries until their TTL runs out.
func (r *AvailabilityRefresher) RefreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, adminID := range r.AdminIDs {
		records, err := r.API.BookingsByProperty(ctx, adminID)
		if err != nil {
			logger.ErrorLogger.Errorf("Availability refresh: failed to fetch bookings for admin %s: %v", adminID, err)
			continue
		}

		tables := make(map[string]availability_models.Table)
		for _, rec := range records {
			if rec.PropertyID == "" || rec.Date == "" {
				continue
			}
			table, ok := tables[rec.PropertyID]
			if !ok {
				table = availability_models.Table{}
				tables[rec.PropertyID] = table
			}
			table.MarkBooked(rec.Date, rec.Session)
		}

		for venueID, table := range tables {
			if err := availability_models.StoreTable(ctx, r.RDB, venueID, table, availabilityTTL); err != nil {
				logger.ErrorLogger.Errorf("Availability refresh: failed to store table for venue %s: %v", venueID, err)
				continue
			}
		}
		logger.InfoLogger.Infof("Availability refreshed for admin %s (%d venue(s))", adminID, len(tables))
	}
}
