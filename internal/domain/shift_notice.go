package domain

// ShiftNotice は従業員への事務連絡を表す
// ShiftSchedule 集約に属する
type ShiftNotice struct {
	id              ShiftNoticeID
	shiftScheduleID ShiftScheduleID
	title           ShiftNoticeTitle
	content         ShiftNoticeContent
}

func NewShiftNotice(shiftScheduleID ShiftScheduleID, title ShiftNoticeTitle, content ShiftNoticeContent) *ShiftNotice {
	return &ShiftNotice{
		id:              NewShiftNoticeID(),
		shiftScheduleID: shiftScheduleID,
		title:           title,
		content:         content,
	}
}

// ReconstructShiftNotice は永続化済みのデータからお知らせを復元する
func ReconstructShiftNotice(id ShiftNoticeID, shiftScheduleID ShiftScheduleID, title ShiftNoticeTitle, content ShiftNoticeContent) *ShiftNotice {
	return &ShiftNotice{
		id:              id,
		shiftScheduleID: shiftScheduleID,
		title:           title,
		content:         content,
	}
}

func (n *ShiftNotice) ID() ShiftNoticeID {
	return n.id
}

func (n *ShiftNotice) ShiftScheduleID() ShiftScheduleID {
	return n.shiftScheduleID
}

func (n *ShiftNotice) Title() ShiftNoticeTitle {
	return n.title
}

func (n *ShiftNotice) Content() ShiftNoticeContent {
	return n.content
}

func (n *ShiftNotice) updateTitle(title ShiftNoticeTitle) {
	n.title = title
}

func (n *ShiftNotice) updateContent(content ShiftNoticeContent) {
	n.content = content
}
