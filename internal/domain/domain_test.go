package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyHours_DayMinutes(t *testing.T) {
	w := WeeklyHours{0, 2, 1.5, 0, -1, 6, 0.25}
	assert.Equal(t, 0, w.DayMinutes(time.Sunday))
	assert.Equal(t, 120, w.DayMinutes(time.Monday))
	assert.Equal(t, 90, w.DayMinutes(time.Tuesday))
	assert.Equal(t, 0, w.DayMinutes(time.Thursday), "negative hours count as zero")
	assert.Equal(t, 360, w.DayMinutes(time.Friday))
	assert.Equal(t, 15, w.DayMinutes(time.Saturday))
	assert.Equal(t, 585, w.TotalMinutes())
}

func TestTopicPrefs_ForDefaults(t *testing.T) {
	prefs := TopicPrefs{3: {Included: false, Difficulty: 4}}
	assert.Equal(t, TopicPreference{Included: false, Difficulty: 4}, prefs.For(3))
	assert.Equal(t, DefaultTopicPreference(), prefs.For(7))

	var nilPrefs TopicPrefs
	assert.Equal(t, DefaultTopicPreference(), nilPrefs.For(0))
}

func TestCompletedTopics_CloneIsIndependent(t *testing.T) {
	c := CompletedTopics{1: true, 2: false}
	clone := c.Clone()
	clone[5] = true
	assert.Len(t, c, 2)
	assert.Equal(t, CompletedTopics{1: true, 5: true}, clone, "false entries are dropped")
}

func TestTaskKey_RoundTrip(t *testing.T) {
	key := TaskKey("2026-10-19", 3)
	assert.Equal(t, "2026-10-19#3", key)

	date, idx, err := ParseTaskKey(key)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", date)
	assert.Equal(t, 3, idx)
}

func TestParseTaskKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "2026-10-19", "2026-10-19-3", "2026-13-40#1", "2026-10-19#x"} {
		_, _, err := ParseTaskKey(key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestIntensification_HasDay(t *testing.T) {
	i := Intensification{Days: []time.Weekday{time.Monday, time.Thursday}}
	assert.True(t, i.HasDay(time.Monday))
	assert.False(t, i.HasDay(time.Sunday))
}

func TestStudyDay_IsFree(t *testing.T) {
	free := StudyDay{Date: "2026-10-20", Tasks: []Task{{Name: FreeDayMarker, Subject: FreeDayMarker, Type: TaskFree}}}
	assert.True(t, free.IsFree())
	assert.Equal(t, 0, free.TotalMinutes())

	idx := 4
	busy := StudyDay{Date: "2026-10-21", Tasks: []Task{{Name: "Funções", Duration: 90, Type: TaskStudy, OriginalIndex: &idx}}}
	assert.False(t, busy.IsFree())
	assert.True(t, busy.Tasks[0].IsStudy())
	assert.Equal(t, 90, busy.TotalMinutes())
}

func TestPlanState_CheckedKeysSorted(t *testing.T) {
	s := &PlanState{Checked: map[string]bool{"2026-10-21#0": true, "2026-10-19#1": true, "2026-10-20#0": false}}
	assert.Equal(t, []string{"2026-10-19#1", "2026-10-21#0"}, s.CheckedKeys())
}

func TestPlanConfig_HasFreeDay(t *testing.T) {
	cfg := NewPlanConfig()
	cfg.FreeDays = []string{"2026-12-25"}
	assert.True(t, cfg.HasFreeDay("2026-12-25"))
	assert.False(t, cfg.HasFreeDay("2026-12-24"))
	assert.Equal(t, ScheduleExtensive, cfg.ScheduleType)
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, MinDifficulty, ClampInt(-3, MinDifficulty, MaxDifficulty))
	assert.Equal(t, 2, ClampInt(2, MinDifficulty, MaxDifficulty))
	assert.Equal(t, MaxDifficulty, ClampInt(9, MinDifficulty, MaxDifficulty))
	assert.Equal(t, MaxDifficulty, ClampInt(MaxDifficulty, MinDifficulty, MaxDifficulty))
}

func TestPointerDefaults(t *testing.T) {
	zero, four := 0, 4
	no := false

	assert.Equal(t, DefaultDifficulty, IntFromPtrWithDefault(DefaultDifficulty))
	assert.Equal(t, DefaultDifficulty, IntFromPtrWithDefault(DefaultDifficulty, nil))
	assert.Equal(t, 0, IntFromPtrWithDefault(DefaultDifficulty, &zero), "explicit zero wins over the fallback")
	assert.Equal(t, 4, IntFromPtrWithDefault(DefaultDifficulty, nil, &four, &zero))

	assert.True(t, BoolFromPtrWithDefault(true, nil))
	assert.False(t, BoolFromPtrWithDefault(true, &no))
}
