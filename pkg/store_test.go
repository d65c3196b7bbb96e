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

package pkg_test

import (
	"context"
	"errors"
	"testing"

	"github.com/TanujTS/aarovia-sub001/mock"
	"github.com/TanujTS/aarovia-sub001/pkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := pkg.NewMemoryStore()

	require.NoError(t, store.SavePrincipal(ctx, pkg.Principal{Address: doctor, Role: pkg.RoleDoctor}))
	require.NoError(t, store.SaveRecordAccess(ctx, pkg.RecordAccess{RecordID: recordID, Grantee: doctor, Active: true}))
	require.NoError(t, store.SavePatientRecord(ctx, pkg.PatientRecord{PatientID: patientID, RecordID: recordID, Owner: patient}))
	require.NoError(t, store.SaveConsent(ctx, pkg.Consent{PatientID: patientID, Grantee: doctor, Active: true}))

	t.Run("it loads what was saved", func(t *testing.T) {
		state, err := store.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, pkg.RoleDoctor, state.Principal(doctor).Role)
		assert.True(t, state.RecordAccess(recordID, doctor))
		assert.Equal(t, []pkg.RecordID{recordID}, state.PatientRecords(patientID))
		consent, ok := state.Consent(patientID, doctor)
		assert.True(t, ok)
		assert.True(t, consent.Active)
	})

	t.Run("a loaded state is detached from the store", func(t *testing.T) {
		state, _ := store.Load(ctx)
		require.NoError(t, store.SavePrincipal(ctx, pkg.Principal{Address: nurse, Role: pkg.RoleNurse}))

		assert.Equal(t, pkg.RoleNone, state.Principal(nurse).Role)
	})
}

func TestAccessControl_StoreFailure(t *testing.T) {
	ctx := context.Background()
	diskFull := errors.New("disk full")

	start := func(t *testing.T) (*pkg.AccessControl, *mock.MockStore, *mock.MockEventPublisher) {
		ctrl := gomock.NewController(t)
		store := mock.NewMockStore(ctrl)
		publisher := mock.NewMockEventPublisher(ctrl)
		initial := pkg.NewState()
		initial.PutPrincipal(pkg.Principal{Address: admin, Role: pkg.RoleAdmin, Admin: true})
		initial.PutPrincipal(pkg.Principal{Address: patient, Role: pkg.RolePatient})
		store.EXPECT().Load(gomock.Any()).Return(initial, nil)

		ac := pkg.NewAccessControl(pkg.AccessControlConfig{}, store, publisher)
		require.NoError(t, ac.Start(ctx))
		return ac, store, publisher
	}

	t.Run("a failed save leaves the state untouched and emits nothing", func(t *testing.T) {
		ac, store, _ := start(t)
		store.EXPECT().SaveConsent(gomock.Any(), gomock.Any()).Return(diskFull)

		err := ac.GrantConsent(ctx, patient, pkg.GrantConsentRequest{
			PatientID:   patientID,
			Grantee:     doctor,
			RecordTypes: []pkg.RecordType{pkg.RecordTypeGeneral},
		})

		assert.ErrorIs(t, err, diskFull)
		assert.Equal(t, pkg.ErrorKind(""), pkg.KindOf(err))
		assert.False(t, ac.IsConsentValid(patientID, doctor))
	})

	t.Run("a rejected mutation never reaches the store", func(t *testing.T) {
		ac, _, _ := start(t)

		assert.ErrorIs(t, ac.AssignRole(ctx, patient, doctor, pkg.RoleDoctor), pkg.ErrNotAdmin)
	})

	t.Run("a publish failure does not undo the mutation", func(t *testing.T) {
		ac, store, publisher := start(t)
		store.EXPECT().SavePrincipal(gomock.Any(), pkg.Principal{Address: doctor, EmergencyAccess: true}).Return(nil)
		publisher.EXPECT().Publish(gomock.Any()).Return(errors.New("subscriber gone"))

		require.NoError(t, ac.GrantEmergencyAccess(ctx, admin, doctor))
		assert.True(t, ac.HasEmergencyAccess(doctor))
	})

	t.Run("a load failure fails the start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, diskFull)

		err := pkg.NewAccessControl(pkg.AccessControlConfig{Initializer: admin}, store, nil).Start(ctx)

		assert.ErrorIs(t, err, diskFull)
	})
}

func TestDetach(t *testing.T) {
	ctx := context.Background()
	store := pkg.NewMemoryStore()
	require.NoError(t, store.SavePrincipal(ctx, pkg.Principal{Address: admin, Role: pkg.RoleAdmin, Admin: true}))

	detached, err := pkg.Detach(ctx, store)
	require.NoError(t, err)
	require.NoError(t, detached.SavePrincipal(ctx, pkg.Principal{Address: responder, EmergencyAccess: true}))

	copied, _ := detached.Load(ctx)
	original, _ := store.Load(ctx)
	assert.True(t, copied.Principal(admin).Admin)
	assert.True(t, copied.Principal(responder).EmergencyAccess)
	assert.False(t, original.Principal(responder).EmergencyAccess)
}
