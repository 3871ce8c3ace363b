package rbl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsort/model"
	"campsort/rbl"
)

func camper(name, grade string) model.Camper {
	return model.Camper{
		Demographics:      model.Demographics{Name: name},
		Grade:             grade,
		AttendsSummerCamp: true,
	}
}

func TestBuildCamperRBL_ContractsHardPairs(t *testing.T) {
	a := camper("A", "2")
	b := camper("B", "2")
	a.PairWith = []string{"B"}
	b.PairWith = []string{"A"}

	ds := model.Dataset{Campers: []model.Camper{a, b}}
	r, err := rbl.BuildCamperRBL(ds, model.Afternoon, 2)
	require.NoError(t, err)
	require.Len(t, r.Components, 1)

	for root, members := range r.Components {
		assert.ElementsMatch(t, []string{"A", "B"}, members)
		assert.Equal(t, []int{0, 1}, r.Domain(root))
	}
}

func TestBuildCamperRBL_DropsIneligiblePairMate(t *testing.T) {
	a := camper("A", "2")
	a.PairWith = []string{"Ghost"}
	ds := model.Dataset{Campers: []model.Camper{a}}

	r, err := rbl.BuildCamperRBL(ds, model.Afternoon, 1)
	require.NoError(t, err)
	require.Len(t, r.Components, 1)
}

func TestBuildCamperRBL_LockNarrowsDomain(t *testing.T) {
	lock := 1
	a := camper("A", "2")
	a.AfternoonGroup = &lock

	ds := model.Dataset{Campers: []model.Camper{a}}
	r, err := rbl.BuildCamperRBL(ds, model.Afternoon, 3)
	require.NoError(t, err)

	for root := range r.Components {
		assert.Equal(t, []int{1}, r.Domain(root))
	}
}

func TestBuildCamperRBL_EmptyDomainFails(t *testing.T) {
	lockA, lockB := 0, 1
	a := camper("A", "2")
	a.AfternoonGroup = &lockA
	a.PairWith = []string{"B"}
	b := camper("B", "2")
	b.AfternoonGroup = &lockB
	b.PairWith = []string{"A"}

	ds := model.Dataset{Campers: []model.Camper{a, b}}
	_, err := rbl.BuildCamperRBL(ds, model.Afternoon, 2)
	assert.ErrorIs(t, err, rbl.ErrEmptyDomain)
}

func TestBuildCamperRBL_PairAvoidContradiction(t *testing.T) {
	a := camper("A", "2")
	a.PairWith = []string{"B"}
	a.AvoidWith = []string{"B"}
	b := camper("B", "2")
	b.PairWith = []string{"A"}

	ds := model.Dataset{Campers: []model.Camper{a, b}}
	_, err := rbl.BuildCamperRBL(ds, model.Afternoon, 2)
	assert.ErrorIs(t, err, rbl.ErrPairAvoidContradiction)
}

func TestBuildCamperRBL_AvoidEdgeIsSymmetric(t *testing.T) {
	a := camper("A", "2")
	a.AvoidWith = []string{"B"}
	b := camper("B", "2")

	ds := model.Dataset{Campers: []model.Camper{a, b}}
	r, err := rbl.BuildCamperRBL(ds, model.Afternoon, 1)
	require.NoError(t, err)

	assert.True(t, r.CompAvoid["A"]["B"])
	assert.True(t, r.CompAvoid["B"]["A"])
}

func TestBuildCamperRBL_SessionEligibility(t *testing.T) {
	morningOnly := camper("A", "2")
	morningOnly.AttendsSummerSchool = false
	campAndSchool := camper("B", "2")
	campAndSchool.AttendsSummerSchool = true

	ds := model.Dataset{Campers: []model.Camper{morningOnly, campAndSchool}}

	rMorning, err := rbl.BuildCamperRBL(ds, model.Morning, 1)
	require.NoError(t, err)
	assert.Len(t, rMorning.Components, 1)

	rAfternoon, err := rbl.BuildCamperRBL(ds, model.Afternoon, 1)
	require.NoError(t, err)
	assert.Len(t, rAfternoon.Components, 2)
}

func TestBuildCamperRBL_InvalidConfig(t *testing.T) {
	_, err := rbl.BuildCamperRBL(model.Dataset{}, model.Session(99), 1)
	assert.ErrorIs(t, err, rbl.ErrUnknownSession)

	_, err = rbl.BuildCamperRBL(model.Dataset{}, model.Afternoon, 0)
	assert.ErrorIs(t, err, rbl.ErrInvalidGroupCount)
}

func TestBuildCamperRBL_EmptyDataset(t *testing.T) {
	r, err := rbl.BuildCamperRBL(model.Dataset{}, model.Afternoon, 1)
	require.NoError(t, err)
	assert.Empty(t, r.Components)
}

func counselor(name string) model.Counselor {
	return model.Counselor{
		Demographics:    model.Demographics{Name: name},
		WorksSummerCamp: true,
		Schedule:        model.Schedule{model.Monday: {Start: "9:00", End: "17:00"}},
	}
}

func TestBuildCounselorRBL_OmitsIneligible(t *testing.T) {
	available := counselor("A")
	unavailable := counselor("B")
	unavailable.Schedule = model.Schedule{}

	ds := model.Dataset{Counselors: []model.Counselor{available, unavailable}}
	r, err := rbl.BuildCounselorRBL(ds, model.Afternoon, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, r.Counselors())
}

func TestBuildCounselorRBL_LockNarrowsDomain(t *testing.T) {
	lock := 2
	c := counselor("A")
	c.AfternoonGroup = &lock

	ds := model.Dataset{Counselors: []model.Counselor{c}}
	r, err := rbl.BuildCounselorRBL(ds, model.Afternoon, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, r.Domain("A"))
}

func TestSelectAfternoonGroupCount_ChoosesLargestFeasible(t *testing.T) {
	params := rbl.DefaultGroupCountParams()
	// 150 campers, 20 counselors: g=10 needs [12,18]*10=[120,180] ok, counselors
	// needed = max(ceil(150/10), 10*2) = max(15, 20) = 20, exactly met.
	got := rbl.SelectAfternoonGroupCount(150, 20, params)
	assert.Equal(t, 10, got)
}

func TestSelectAfternoonGroupCount_DefaultsWhenInfeasible(t *testing.T) {
	params := rbl.DefaultGroupCountParams()
	got := rbl.SelectAfternoonGroupCount(1, 0, params)
	assert.Equal(t, params.MinGroups, got)
}
