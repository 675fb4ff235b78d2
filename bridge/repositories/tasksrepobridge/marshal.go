package tasksrepobridge

import (
	"github.com/jrazmi/taskserv/core/repositories/tasksrepo"
	"github.com/jrazmi/taskserv/sdk/validation"
)

// MarshalToBridge converts a core task to the transport model.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   validation.FormatTimeToString(task.CreatedAt),
		UpdatedAt:   validation.FormatTimeToString(task.UpdatedAt),
	}
}

// MarshalListToBridge converts a list of core tasks to transport models.
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts a validated input to the repository
// create model. Fields are already sanitized by validateInput.
func MarshalCreateToRepository(input TaskInput) tasksrepo.NewTask {
	return tasksrepo.NewTask{
		Title:       validation.GetStringOrEmpty(input.Title),
		Description: validation.GetStringOrEmpty(input.Description),
		Completed:   validation.GetBoolOrFalse(input.Completed),
	}
}

// MarshalUpdateToRepository converts a validated input to the repository
// update model.
func MarshalUpdateToRepository(input TaskInput) tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Title:       validation.GetStringOrEmpty(input.Title),
		Description: validation.GetStringOrEmpty(input.Description),
		Completed:   validation.GetBoolOrFalse(input.Completed),
	}
}
