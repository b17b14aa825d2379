package usecase

import "context"

// SyncResult summarizes one reference-data import run.
type SyncResult struct {
	Fetched  int // Records served by the feed.
	Imported int // Records written to the database.
	Skipped  int // Records dropped by dedupe or skip rules.
}

// SyncUsecase defines the reference-data import flows that mirror the
// university timetable feeds into the local database.
type SyncUsecase interface {
	// SyncGroups replaces the groups table with the current subgroup feed.
	// Records without a group name or specialization are dropped; duplicate
	// group names keep their first occurrence.
	SyncGroups(ctx context.Context) (*SyncResult, error)

	// SyncClassrooms imports rooms from the room feed, skipping entries with
	// an empty name and rooms that already exist locally.
	SyncClassrooms(ctx context.Context) (*SyncResult, error)

	// SyncTeachers replaces the teaching-staff table with the staff feed and
	// creates teacher accounts for records carrying both names and an email
	// not yet registered.
	SyncTeachers(ctx context.Context) (*SyncResult, error)
}
