package domain

// ShiftType はシフト区分（早番・遅番など）を表す集約ルート
type ShiftType struct {
	id        ShiftTypeID
	name      ShiftTypeName
	startTime ShiftTypeTime
	endTime   ShiftTypeTime
	version   int32
}

func NewShiftType(name ShiftTypeName, startTime ShiftTypeTime, endTime ShiftTypeTime) (*ShiftType, error) {
	if err := validateEndTimeAfterStartTime(startTime, endTime); err != nil {
		return nil, err
	}
	return &ShiftType{
		id:        NewShiftTypeID(),
		name:      name,
		startTime: startTime,
		endTime:   endTime,
	}, nil
}

// ReconstructShiftType は永続化済みのデータからシフト区分を復元する
// 不正なデータを読み込まないよう時刻の検証は再実行する
func ReconstructShiftType(id ShiftTypeID, name ShiftTypeName, startTime ShiftTypeTime, endTime ShiftTypeTime, version int32) (*ShiftType, error) {
	if err := validateEndTimeAfterStartTime(startTime, endTime); err != nil {
		return nil, err
	}
	return &ShiftType{
		id:        id,
		name:      name,
		startTime: startTime,
		endTime:   endTime,
		version:   version,
	}, nil
}

func validateEndTimeAfterStartTime(startTime ShiftTypeTime, endTime ShiftTypeTime) error {
	if endTime.ToMinutes() <= startTime.ToMinutes() {
		return ErrEndTimeMustBeAfterStartTime
	}
	return nil
}

func (s *ShiftType) ID() ShiftTypeID {
	return s.id
}

func (s *ShiftType) Name() ShiftTypeName {
	return s.name
}

func (s *ShiftType) StartTime() ShiftTypeTime {
	return s.startTime
}

func (s *ShiftType) EndTime() ShiftTypeTime {
	return s.endTime
}

func (s *ShiftType) Version() int32 {
	return s.version
}

func (s *ShiftType) UpdateName(name ShiftTypeName) {
	s.name = name
}

func (s *ShiftType) UpdateTime(startTime ShiftTypeTime, endTime ShiftTypeTime) error {
	if err := validateEndTimeAfterStartTime(startTime, endTime); err != nil {
		return err
	}
	s.startTime = startTime
	s.endTime = endTime
	return nil
}

// DurationHours は始業から終業までの時間数を返す
// 小数第1位までに切り上げる（例: 75分 → 1.3時間）
func (s *ShiftType) DurationHours() float64 {
	minutes := s.endTime.ToMinutes() - s.startTime.ToMinutes()
	tenths := (minutes + 5) / 6 // ceil(minutes/60*10)
	return float64(tenths) / 10
}
