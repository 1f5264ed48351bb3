package services

import model "task-tracker.com/task-tracker/internal/models"

type sampleTask struct {
	name     string
	dateFrom string
	dateTo   string
	isDone   bool
}

var sampleTasks = []sampleTask{
	{"Gather project requirements", "2023-01-10", "2023-01-15", true},
	{"Design system architecture", "2023-02-20", "2023-03-05", true},
	{"Set up development environment", "2023-03-15", "", true},
	{"Implement core components", "2023-04-01", "2023-04-30", true},
	{"Alpha release testing", "2023-05-10", "2023-05-25", true},
	{"Performance tuning", "2023-06-01", "", true},
	{"Write technical documentation", "2023-07-15", "2023-07-30", true},
	{"Team training", "2023-08-10", "2023-08-20", true},
	{"Deploy beta release", "2023-09-01", "2023-09-15", true},
	{"Beta testing with users", "2023-10-01", "2023-10-31", true},
	{"Fix critical bugs", "2023-11-15", "2023-11-30", true},
	{"Prepare for production", "2023-12-01", "2023-12-20", true},
	{"Prepare team presentation", "2024-01-15", "2024-01-20", false},
	{"Review project documentation", "2024-01-16", "", true},
	{"Client meeting on requirements", "2024-01-17", "2024-01-17", false},
	{"Implement login module", "2024-02-18", "2024-02-25", false},
	{"Unit tests for the API", "2024-02-19", "", true},
	{"Database upgrade", "2024-03-20", "2024-03-21", false},
	{"Review pull requests", "2024-03-21", "", false},
	{"Onboard new team member", "2024-04-22", "2024-04-24", false},
	{"Optimise application performance", "2024-04-23", "2024-04-30", false},
	{"Monthly report", "2024-05-24", "", true},
	{"Payment system integration", "2024-05-25", "2024-06-01", false},
	{"Back up production data", "2024-06-26", "2024-06-26", true},
	{"Update API documentation", "2024-06-27", "", false},
	{"Deploy to staging", "2024-07-28", "2024-07-28", false},
	{"Analyse errors from logs", "2024-07-29", "2024-07-31", false},
	{"Daily standup", "2024-08-30", "", true},
	{"Refactor legacy code", "2024-08-31", "2024-09-05", false},
	{"Board demo", "2024-09-01", "2024-09-03", false},
	{"Monitor system performance", "2024-10-02", "", true},
	{"Plan next sprint", "2024-11-03", "2024-11-04", false},
	{"Security update", "2024-11-15", "2024-11-20", false},
	{"Final documentation", "2024-12-10", "", true},
	{"Integration tests", "2024-12-15", "2024-12-22", false},
	{"Production deployment", "2024-12-28", "2024-12-31", false},
	{"Plan new features", "2025-01-05", "2025-01-15", false},
	{"Competitor analysis", "2025-01-20", "", false},
	{"UI/UX design", "2025-02-01", "2025-02-28", false},
	{"Implement new modules", "2025-03-01", "2025-03-31", false},
	{"Test new features", "2025-04-01", "", false},
	{"Performance pass", "2025-05-01", "2025-05-15", false},
	{"User training", "2025-06-01", "2025-06-30", false},
	{"Release new version", "2025-07-01", "2025-07-15", false},
	{"Post-release monitoring", "2025-08-01", "", false},
	{"Collect feedback", "2025-09-01", "2025-09-30", false},
	{"Iterate on feedback", "2025-10-01", "2025-10-31", false},
	{"Wrap up the project", "2025-11-01", "2025-11-30", false},
	{"Closing documentation", "2025-12-01", "2025-12-15", false},
}

// SampleTasks returns a fresh copy of the demo task list owned by ownerID.
func SampleTasks(ownerID string) []model.Task {
	tasks := make([]model.Task, len(sampleTasks))
	for i, s := range sampleTasks {
		tasks[i] = model.Task{
			OwnerID:  ownerID,
			Name:     s.name,
			DateFrom: s.dateFrom,
			DateTo:   optionalDate(s.dateTo),
			IsDone:   s.isDone,
		}
	}
	return tasks
}
