package console

import (
	"context"
	"errors"
	"fmt"
)

const menu = `
🔹 Zenith Task Manager 🔹
1️⃣ Add Task
2️⃣ View Tasks
3️⃣ Complete Task
4️⃣ Delete Task
5️⃣ Create Category
6️⃣ View Categories
7️⃣ Start Pomodoro Timer
8️⃣ Exit
`

// Run shows the menu until the user exits, the input ends or ctx is
// cancelled. Failed operations are reported and the loop continues.
func (a *App) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		a.printf("%s", menu)
		choice, err := a.prompt("Select an option (1-8): ")
		if errors.Is(err, ErrInputClosed) {
			a.printf("\n👋 Exiting Zenith Task. Stay productive!\n")
			return nil
		}

		if choice == "8" {
			a.printf("👋 Exiting Zenith Task. Stay productive!\n")
			return nil
		}

		if err := a.dispatch(ctx, choice); errors.Is(err, ErrInputClosed) {
			a.printf("\n👋 Exiting Zenith Task. Stay productive!\n")
			return nil
		} else if err != nil {
			_ = a.Report(err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		description, err := a.prompt("Enter task description: ")
		if err != nil {
			return err
		}
		category, err := a.prompt("Enter task category (or press Enter for 'General'): ")
		if err != nil {
			return err
		}
		return a.AddTask(description, category)

	case "2":
		return a.ViewTasks()

	case "3", "4":
		if err := a.ViewTasks(); err != nil {
			return err
		}
		category, err := a.prompt("Enter the category of the task: ")
		if err != nil {
			return err
		}
		verb := "complete"
		if choice == "4" {
			verb = "delete"
		}
		number, err := a.promptInt("Enter task number to "+verb+": ", 0)
		if err != nil {
			return err
		}
		if choice == "3" {
			return a.CompleteTask(number, category)
		}
		return a.DeleteTask(number, category)

	case "5":
		name, err := a.prompt("Enter new category name: ")
		if err != nil {
			return err
		}
		return a.CreateCategory(name)

	case "6":
		return a.ViewCategories()

	case "7":
		work, err := a.promptInt(fmt.Sprintf("Enter focus time in minutes (default %d): ", a.workMinutes), a.workMinutes)
		if err != nil {
			return err
		}
		brk, err := a.promptInt(fmt.Sprintf("Enter break time in minutes (default %d): ", a.breakMinutes), a.breakMinutes)
		if err != nil {
			return err
		}
		_, err = a.StartTimer(ctx, work, brk)
		return err

	default:
		a.printf("❌ Invalid choice. Please select 1-8.\n")
		return nil
	}
}
