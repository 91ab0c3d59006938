package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL DEFAULT '',
		type VARCHAR(20) NOT NULL DEFAULT 'residential',
		category VARCHAR(120) NOT NULL DEFAULT '',
		contract_type VARCHAR(120) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		internal_code VARCHAR(64) NOT NULL DEFAULT '',
		display_name VARCHAR(240) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS file_uploads (
		id BIGSERIAL PRIMARY KEY,
		original_name VARCHAR(255) NOT NULL DEFAULT '',
		stored_name VARCHAR(255) NOT NULL,
		size BIGINT NOT NULL DEFAULT 0,
		content_type VARCHAR(120) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_file_uploads_stored_name ON file_uploads (stored_name);`,
	`CREATE TABLE IF NOT EXISTS site_plans (
		id BIGSERIAL PRIMARY KEY,
		project_id BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		municipality VARCHAR(120) NOT NULL DEFAULT '',
		zone VARCHAR(120) NOT NULL DEFAULT '',
		sector VARCHAR(120) NOT NULL DEFAULT '',
		road_name VARCHAR(120) NOT NULL DEFAULT '',
		plot_area_sqm NUMERIC(12,2),
		plot_area_sqft NUMERIC(12,2),
		land_no VARCHAR(120) NOT NULL DEFAULT '',
		plot_address VARCHAR(120) NOT NULL DEFAULT '',
		construction_status VARCHAR(120) NOT NULL DEFAULT '',
		allocation_type VARCHAR(120) NOT NULL DEFAULT '',
		allocation_date DATE,
		land_use VARCHAR(200) NOT NULL DEFAULT '',
		base_district VARCHAR(200) NOT NULL DEFAULT '',
		overlay_district VARCHAR(200) NOT NULL DEFAULT '',
		project_no VARCHAR(120) NOT NULL DEFAULT '',
		project_name VARCHAR(200) NOT NULL DEFAULT '',
		developer_name VARCHAR(200) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		application_number VARCHAR(120) NOT NULL DEFAULT '',
		application_date DATE,
		application_file_id BIGINT REFERENCES file_uploads(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_site_plans_project_id ON site_plans (project_id);`,
	`CREATE TABLE IF NOT EXISTS site_plan_owners (
		id BIGSERIAL PRIMARY KEY,
		site_plan_id BIGINT NOT NULL REFERENCES site_plans(id) ON DELETE CASCADE,
		owner_name_ar VARCHAR(200) NOT NULL DEFAULT '',
		owner_name_en VARCHAR(200) NOT NULL DEFAULT '',
		nationality VARCHAR(120) NOT NULL DEFAULT '',
		phone VARCHAR(60) NOT NULL DEFAULT '',
		email VARCHAR(200) NOT NULL DEFAULT '',
		id_number VARCHAR(120) NOT NULL DEFAULT '',
		id_issue_date DATE,
		id_expiry_date DATE,
		right_hold_type VARCHAR(120) NOT NULL DEFAULT 'Ownership',
		share_possession VARCHAR(120) NOT NULL DEFAULT '',
		share_percent NUMERIC(5,2) NOT NULL DEFAULT 100 CHECK (share_percent >= 0 AND share_percent <= 100),
		id_file_id BIGINT REFERENCES file_uploads(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_site_plan_owners_site_plan_id ON site_plan_owners (site_plan_id);`,
	`CREATE TABLE IF NOT EXISTS building_licenses (
		id BIGSERIAL PRIMARY KEY,
		project_id BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		license_no VARCHAR(120) NOT NULL DEFAULT '',
		issue_date DATE,
		expiry_date DATE,
		last_issue_date DATE,
		license_stage VARCHAR(120) NOT NULL DEFAULT '',
		license_status VARCHAR(60) NOT NULL DEFAULT '',
		project_description VARCHAR(300) NOT NULL DEFAULT '',
		technical_decision_ref VARCHAR(120) NOT NULL DEFAULT '',
		technical_decision_at DATE,
		city VARCHAR(120) NOT NULL DEFAULT '',
		zone VARCHAR(120) NOT NULL DEFAULT '',
		sector VARCHAR(120) NOT NULL DEFAULT '',
		plot_no VARCHAR(120) NOT NULL DEFAULT '',
		plot_address VARCHAR(120) NOT NULL DEFAULT '',
		plot_area_sqm NUMERIC(12,2),
		owner_name VARCHAR(200) NOT NULL DEFAULT '',
		consultant_name VARCHAR(200) NOT NULL DEFAULT '',
		consultant_license_no VARCHAR(120) NOT NULL DEFAULT '',
		contractor_name VARCHAR(200) NOT NULL DEFAULT '',
		contractor_license_no VARCHAR(120) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		owners JSONB NOT NULL DEFAULT '[]',
		siteplan_snapshot JSONB NOT NULL DEFAULT '{}',
		license_file_id BIGINT REFERENCES file_uploads(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_building_licenses_project_id ON building_licenses (project_id);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id BIGSERIAL PRIMARY KEY,
		project_id BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		classification VARCHAR(120) NOT NULL DEFAULT '',
		contract_type VARCHAR(120) NOT NULL DEFAULT '',
		tender_no VARCHAR(120) NOT NULL DEFAULT '',
		contract_date DATE,
		contractor_name VARCHAR(200) NOT NULL DEFAULT '',
		contractor_license_no VARCHAR(120) NOT NULL DEFAULT '',
		project_value NUMERIC(18,2) CHECK (project_value IS NULL OR project_value > 0),
		bank_value NUMERIC(18,2) CHECK (bank_value IS NULL OR bank_value >= 0),
		owner_value NUMERIC(18,2),
		duration_months INT,
		owner_fees JSONB NOT NULL DEFAULT '{}',
		bank_fees JSONB NOT NULL DEFAULT '{}',
		license_snapshot JSONB NOT NULL DEFAULT '{}',
		contract_file_id BIGINT REFERENCES file_uploads(id),
		appendix_file_id BIGINT REFERENCES file_uploads(id),
		explanation_file_id BIGINT REFERENCES file_uploads(id),
		start_order_file_id BIGINT REFERENCES file_uploads(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_project_id ON contracts (project_id);`,
	`CREATE TABLE IF NOT EXISTS awardings (
		id BIGSERIAL PRIMARY KEY,
		project_id BIGINT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		award_date DATE,
		consultant_registration VARCHAR(120) NOT NULL DEFAULT '',
		contractor_registration VARCHAR(120) NOT NULL DEFAULT '',
		project_number VARCHAR(120) NOT NULL DEFAULT '',
		award_file_id BIGINT REFERENCES file_uploads(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_awardings_project_id ON awardings (project_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
