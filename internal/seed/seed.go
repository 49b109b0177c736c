package seed

import (
	"fmt"
	"log/slog"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/repository"
)

type shiftTypeSeed struct {
	Name      string
	StartTime string
	EndTime   string
}

var demoShiftTypes = []shiftTypeSeed{
	{Name: "早番", StartTime: "07:00", EndTime: "15:00"},
	{Name: "日勤", StartTime: "09:00", EndTime: "18:00"},
	{Name: "遅番", StartTime: "13:00", EndTime: "22:00"},
}

type employeeSeed struct {
	FullName string
	Type     domain.EmployeeType
}

var demoEmployees = []employeeSeed{
	{FullName: "佐藤 翔太", Type: domain.EmployeeTypeRegular},
	{FullName: "鈴木 美咲", Type: domain.EmployeeTypeRegular},
	{FullName: "高橋 大輝", Type: domain.EmployeeTypeRegular},
	{FullName: "田中 結衣", Type: domain.EmployeeTypeDispatched},
	{FullName: "伊藤 健太", Type: domain.EmployeeTypeDispatched},
}

func mustShiftType(seed shiftTypeSeed) (*domain.ShiftType, error) {
	name, err := domain.NewShiftTypeName(seed.Name)
	if err != nil {
		return nil, err
	}
	startTime, err := domain.NewShiftTypeTime(seed.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := domain.NewShiftTypeTime(seed.EndTime)
	if err != nil {
		return nil, err
	}
	return domain.NewShiftType(name, startTime, endTime)
}

// SeedDemoData は動作確認用のひと通りのデータを投入する
// シフト区分・従業員・当月のシフトスケジュール（アサインとお知らせ付き）を作る
func SeedDemoData(r *repository.Repository, clock domain.Clock) {
	// シフト区分
	shiftTypes := make([]*domain.ShiftType, 0, len(demoShiftTypes))
	for _, seed := range demoShiftTypes {
		shiftType, err := mustShiftType(seed)
		if err != nil {
			slog.Error("シフト区分を生成できません", "error", err)
			return
		}
		if err := r.CreateShiftType(shiftType); err != nil {
			slog.Error("シフト区分を投入できません", "error", err)
			return
		}
		shiftTypes = append(shiftTypes, shiftType)
	}

	// 従業員
	employees := make([]*domain.Employee, 0, len(demoEmployees))
	for _, seed := range demoEmployees {
		fullName, err := domain.NewEmployeeFullName(seed.FullName)
		if err != nil {
			slog.Error("従業員を生成できません", "error", err)
			return
		}
		employee := domain.NewEmployee(fullName, seed.Type)
		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("従業員を投入できません", "error", err)
			return
		}
		employees = append(employees, employee)
	}

	// 当月のシフトスケジュール
	now := clock.Now().In(domain.JST)

	year, err := domain.NewShiftScheduleYear(now.Year())
	if err != nil {
		slog.Error("対象年が不正です", "error", err)
		return
	}
	month, err := domain.NewShiftScheduleMonth(int(now.Month()))
	if err != nil {
		slog.Error("対象月が不正です", "error", err)
		return
	}

	schedule, err := domain.NewShiftSchedule(clock, year, month)
	if err != nil {
		slog.Error("シフトスケジュールを生成できません", "error", err)
		return
	}

	// 1 週間分のアサインを入れる
	for day := 1; day <= 7; day++ {
		date, err := domain.NewShiftAssignmentDate(fmt.Sprintf("%04d-%02d-%02d", year.Int(), month.Int(), day))
		if err != nil {
			slog.Error("日付が不正です", "error", err)
			return
		}

		for i, employee := range employees {
			// 従業員ごとにシフト区分をずらしながら割り当て、週の後半に休みを混ぜる
			switch {
			case (day+i)%7 == 0:
				err = schedule.GrantPublicHoliday(date, employee.ID())
			case (day+i)%7 == 6:
				err = schedule.GrantPaidLeave(date, employee.ID())
			default:
				shiftType := shiftTypes[(day+i)%len(shiftTypes)]
				err = schedule.AssignShift(date, employee.ID(), shiftType.ID())
			}
			if err != nil {
				slog.Error("アサインを投入できません", "error", err)
				return
			}
		}
	}

	title, err := domain.NewShiftNoticeTitle("今月のシフトについて")
	if err != nil {
		slog.Error("お知らせのタイトルが不正です", "error", err)
		return
	}
	content, err := domain.NewShiftNoticeContent("シフトの変更希望がある場合は、前週の金曜日までに店長へ連絡してください。")
	if err != nil {
		slog.Error("お知らせの本文が不正です", "error", err)
		return
	}
	if err := schedule.CreateNotice(title, content); err != nil {
		slog.Error("お知らせを投入できません", "error", err)
		return
	}

	if err := r.CreateShiftSchedule(schedule); err != nil {
		slog.Error("シフトスケジュールを投入できません", "error", err)
		return
	}

	slog.Info("デモデータの投入が完了しました", "scheduleId", schedule.ID().String())
}
