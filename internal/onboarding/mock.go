package onboarding

const unsplashParams = "?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=128&h=128&q=80"

// MockSnapshot returns the built-in demo data set.
func MockSnapshot() Snapshot {
	return Snapshot{
		User: User{
			Name:     "Alex Chen",
			Initials: "AC",
		},
		Journey: Journey{
			Progress: 25,
			Tasks: []Task{
				{Text: "Setup your profile", Completed: true},
				{Text: "Complete HR paperwork", Completed: false},
				{Text: "Attend orientation", Completed: false},
			},
		},
		FirstTasks: FirstTasks{
			MainTask: "Complete HR Paperwork",
			SubTasks: []Task{
				{Text: "Review company handbook", Completed: true},
				{Text: "Meet your buddy", Completed: true},
			},
		},
		Team: []TeamMember{
			{Name: "Sarah Lee", ImageURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330" + unsplashParams},
			{Name: "David Chen", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d" + unsplashParams},
			{Name: "Maria Rodriguez", ImageURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956" + unsplashParams},
			{Name: "Ben Carter", ImageURL: "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6" + unsplashParams},
		},
	}
}
