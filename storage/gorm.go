/*
 * This file is part of aarovia.
 *
 * aarovia is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * aarovia is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with aarovia.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func logger() *logrus.Entry {
	return logrus.StandardLogger().WithField("module", "storage")
}

type principalModel struct {
	Address         string `gorm:"primaryKey;size:42"`
	Role            string `gorm:"not null;size:20"`
	Admin           bool   `gorm:"not null;index"`
	EmergencyAccess bool   `gorm:"not null"`
	UpdatedAt       time.Time
}

func (principalModel) TableName() string {
	return "principals"
}

type recordAccessModel struct {
	RecordID  string `gorm:"primaryKey;size:36"`
	Grantee   string `gorm:"primaryKey;size:42"`
	Active    bool   `gorm:"not null"`
	UpdatedAt time.Time
}

func (recordAccessModel) TableName() string {
	return "record_access"
}

// patientRecordModel is ordered by ID to keep the registration order of a patient's records.
type patientRecordModel struct {
	ID           uint      `gorm:"primarykey"`
	RecordID     string    `gorm:"not null;size:36;uniqueIndex"`
	PatientID    string    `gorm:"not null;size:36;index"`
	Owner        string    `gorm:"not null;size:42"`
	RegisteredAt time.Time `gorm:"not null"`
}

func (patientRecordModel) TableName() string {
	return "patient_records"
}

type consentModel struct {
	PatientID   string     `gorm:"primaryKey;size:36"`
	Grantee     string     `gorm:"primaryKey;size:42"`
	ConsentType string     `gorm:"not null;size:20"`
	RecordTypes uint16     `gorm:"not null"`
	ExpiresAt   *time.Time `gorm:"index"`
	Active      bool       `gorm:"not null"`
	GrantedAt   time.Time  `gorm:"not null"`
}

func (consentModel) TableName() string {
	return "consents"
}

// GormStore persists the access control state in a relational database.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the PostgreSQL database at dsn and migrates the schema.
func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	store := NewGormStore(db)
	if err := store.Migrate(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&principalModel{}, &recordAccessModel{}, &patientRecordModel{}, &consentModel{}); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}
	return nil
}

// Close releases the database connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) Load(ctx context.Context) (*pkg.State, error) {
	db := s.db.WithContext(ctx)
	state := pkg.NewState()

	var principals []principalModel
	if err := db.Find(&principals).Error; err != nil {
		return nil, fmt.Errorf("could not load principals: %w", err)
	}
	for _, m := range principals {
		p, err := m.toPrincipal()
		if err != nil {
			return nil, err
		}
		state.PutPrincipal(p)
	}

	var grants []recordAccessModel
	if err := db.Find(&grants).Error; err != nil {
		return nil, fmt.Errorf("could not load record access: %w", err)
	}
	for _, m := range grants {
		a, err := m.toRecordAccess()
		if err != nil {
			return nil, err
		}
		state.PutRecordAccess(a)
	}

	var records []patientRecordModel
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("could not load patient records: %w", err)
	}
	for _, m := range records {
		r, err := m.toPatientRecord()
		if err != nil {
			return nil, err
		}
		state.PutPatientRecord(r)
	}

	var consents []consentModel
	if err := db.Find(&consents).Error; err != nil {
		return nil, fmt.Errorf("could not load consents: %w", err)
	}
	for _, m := range consents {
		c, err := m.toConsent()
		if err != nil {
			return nil, err
		}
		state.PutConsent(c)
	}

	logger().Debugf("loaded %d principals, %d record grants, %d records and %d consents", len(principals), len(grants), len(records), len(consents))
	return state, nil
}

func (s *GormStore) SavePrincipal(ctx context.Context, principal pkg.Principal) error {
	m := principalModel{
		Address:         principal.Address.String(),
		Role:            principal.Role.String(),
		Admin:           principal.Admin,
		EmergencyAccess: principal.EmergencyAccess,
	}
	return s.upsert(ctx, &m)
}

func (s *GormStore) SaveRecordAccess(ctx context.Context, access pkg.RecordAccess) error {
	m := recordAccessModel{
		RecordID: access.RecordID.String(),
		Grantee:  access.Grantee.String(),
		Active:   access.Active,
	}
	return s.upsert(ctx, &m)
}

// SavePatientRecord inserts a record registration. Registrations are never updated.
func (s *GormStore) SavePatientRecord(ctx context.Context, record pkg.PatientRecord) error {
	m := patientRecordModel{
		RecordID:     record.RecordID.String(),
		PatientID:    record.PatientID.String(),
		Owner:        record.Owner.String(),
		RegisteredAt: record.RegisteredAt.UTC(),
	}
	return s.db.WithContext(ctx).Create(&m).Error
}

func (s *GormStore) SaveConsent(ctx context.Context, consent pkg.Consent) error {
	m := consentModel{
		PatientID:   consent.PatientID.String(),
		Grantee:     consent.Grantee.String(),
		ConsentType: consent.Type.String(),
		RecordTypes: uint16(consent.RecordTypes),
		Active:      consent.Active,
		GrantedAt:   consent.GrantedAt.UTC(),
	}
	if !consent.ExpiresAt.IsZero() {
		expiresAt := consent.ExpiresAt.UTC()
		m.ExpiresAt = &expiresAt
	}
	return s.upsert(ctx, &m)
}

func (s *GormStore) upsert(ctx context.Context, value interface{}) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
}

func (m principalModel) toPrincipal() (pkg.Principal, error) {
	address, err := pkg.ParseAddress(m.Address)
	if err != nil {
		return pkg.Principal{}, err
	}
	role, err := pkg.ParseRole(m.Role)
	if err != nil {
		return pkg.Principal{}, fmt.Errorf("principal %s: %w", m.Address, err)
	}
	return pkg.Principal{Address: address, Role: role, Admin: m.Admin, EmergencyAccess: m.EmergencyAccess}, nil
}

func (m recordAccessModel) toRecordAccess() (pkg.RecordAccess, error) {
	recordID, err := pkg.ParseRecordID(m.RecordID)
	if err != nil {
		return pkg.RecordAccess{}, err
	}
	grantee, err := pkg.ParseAddress(m.Grantee)
	if err != nil {
		return pkg.RecordAccess{}, err
	}
	return pkg.RecordAccess{RecordID: recordID, Grantee: grantee, Active: m.Active}, nil
}

func (m patientRecordModel) toPatientRecord() (pkg.PatientRecord, error) {
	recordID, err := pkg.ParseRecordID(m.RecordID)
	if err != nil {
		return pkg.PatientRecord{}, err
	}
	patientID, err := pkg.ParsePatientID(m.PatientID)
	if err != nil {
		return pkg.PatientRecord{}, err
	}
	owner, err := pkg.ParseAddress(m.Owner)
	if err != nil {
		return pkg.PatientRecord{}, err
	}
	return pkg.PatientRecord{PatientID: patientID, RecordID: recordID, Owner: owner, RegisteredAt: m.RegisteredAt.UTC()}, nil
}

func (m consentModel) toConsent() (pkg.Consent, error) {
	patientID, err := pkg.ParsePatientID(m.PatientID)
	if err != nil {
		return pkg.Consent{}, err
	}
	grantee, err := pkg.ParseAddress(m.Grantee)
	if err != nil {
		return pkg.Consent{}, err
	}
	consentType, err := pkg.ParseConsentType(m.ConsentType)
	if err != nil {
		return pkg.Consent{}, err
	}
	c := pkg.Consent{
		PatientID:   patientID,
		Grantee:     grantee,
		Type:        consentType,
		RecordTypes: pkg.RecordTypeSet(m.RecordTypes),
		Active:      m.Active,
		GrantedAt:   m.GrantedAt.UTC(),
	}
	if m.ExpiresAt != nil {
		c.ExpiresAt = m.ExpiresAt.UTC()
	}
	return c, nil
}

var _ pkg.Store = (*GormStore)(nil)
