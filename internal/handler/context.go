package handler

type ContextKey string

var (
	SubCtxKey            ContextKey = "sub"
	MyInfoCtx            ContextKey = "myInfo"
	ManagerInfoCtx       ContextKey = "managerInfo"
	EmployeeInfoCtx      ContextKey = "employeeInfo"
	ShiftTypeInfoCtx     ContextKey = "shiftTypeInfo"
	ShiftScheduleInfoCtx ContextKey = "shiftScheduleInfo"
)
