package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campsort/model"
)

func TestNormalizeGrade(t *testing.T) {
	value, ok := model.NormalizeGrade("K")
	assert.True(t, ok)
	assert.Equal(t, 0, value)

	value, ok = model.NormalizeGrade("6")
	assert.True(t, ok)
	assert.Equal(t, 6, value)

	_, ok = model.NormalizeGrade("7")
	assert.False(t, ok)
}

func TestAgeBand(t *testing.T) {
	assert.Equal(t, "K-1", model.AgeBand(0))
	assert.Equal(t, "K-1", model.AgeBand(1))
	assert.Equal(t, "2-3", model.AgeBand(2))
	assert.Equal(t, "2-3", model.AgeBand(3))
	assert.Equal(t, "4-6", model.AgeBand(4))
	assert.Equal(t, "4-6", model.AgeBand(6))
}

func TestSessionParseAndString(t *testing.T) {
	s, ok := model.ParseSession("morning")
	assert.True(t, ok)
	assert.Equal(t, model.Morning, s)
	assert.Equal(t, "morning", s.String())

	s, ok = model.ParseSession("afternoon")
	assert.True(t, ok)
	assert.Equal(t, model.Afternoon, s)

	_, ok = model.ParseSession("evening")
	assert.False(t, ok)
}

func TestCamperEligibleFor(t *testing.T) {
	campOnly := model.Camper{AttendsSummerCamp: true, AttendsSummerSchool: false}
	assert.True(t, campOnly.EligibleFor(model.Morning))
	assert.True(t, campOnly.EligibleFor(model.Afternoon))

	both := model.Camper{AttendsSummerCamp: true, AttendsSummerSchool: true}
	assert.False(t, both.EligibleFor(model.Morning))
	assert.True(t, both.EligibleFor(model.Afternoon))

	neither := model.Camper{}
	assert.False(t, neither.EligibleFor(model.Morning))
	assert.False(t, neither.EligibleFor(model.Afternoon))
}

func TestCamperGroupLock(t *testing.T) {
	lock := 3
	c := model.Camper{AfternoonGroup: &lock}
	assert.Nil(t, c.GroupLock(model.Morning))
	assert.Equal(t, &lock, c.GroupLock(model.Afternoon))
}

func TestCounselorEligibleFor(t *testing.T) {
	available := model.Schedule{model.Monday: {Start: "9:00", End: "17:00"}}
	unavailable := model.Schedule{}

	c := model.Counselor{WorksSummerCamp: true, Schedule: available}
	assert.True(t, c.EligibleFor(model.Afternoon))
	assert.False(t, c.EligibleFor(model.Morning))

	c2 := model.Counselor{WorksSummerCamp: true, Schedule: unavailable}
	assert.False(t, c2.EligibleFor(model.Afternoon))
}

func TestCounselorCanPairWith(t *testing.T) {
	a := model.Counselor{Demographics: model.Demographics{Name: "A"}, AvoidWith: []string{"B"}}
	b := model.Counselor{Demographics: model.Demographics{Name: "B"}}
	c := model.Counselor{Demographics: model.Demographics{Name: "C"}}

	assert.False(t, a.CanPairWith(b))
	assert.False(t, b.CanPairWith(a))
	assert.True(t, a.CanPairWith(c))
}

func TestSharedLanguages(t *testing.T) {
	shared := model.SharedLanguages([]string{"en", "es"}, []string{"es", "fr"})
	assert.Equal(t, []string{"es"}, shared)

	assert.Nil(t, model.SharedLanguages(nil, []string{"en"}))
}

func TestDatasetIndexes(t *testing.T) {
	ds := model.Dataset{
		Campers:    []model.Camper{{Demographics: model.Demographics{Name: "X"}}},
		Counselors: []model.Counselor{{Demographics: model.Demographics{Name: "Y"}}},
	}
	byName := ds.CamperByName()
	assert.Contains(t, byName, "X")

	cByName := ds.CounselorByName()
	assert.Contains(t, cByName, "Y")
}
