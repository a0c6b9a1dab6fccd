package mcp

import "github.com/mark3labs/mcp-go/mcp"

var addToolDef = mcp.NewTool("task_add",
	mcp.WithDescription("Create a pending task. The task is appended to the list and the task file is rewritten. "+
		"Returns the new task with its id. If the file cannot be written the task is still created and a warning is included."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Task title. Must not be empty. Commas are stored as ';' and newlines as spaces."),
	),
	mcp.WithString("category",
		mcp.Description("Optional free-form category label."),
	),
)

var listToolDef = mcp.NewTool("task_list",
	mcp.WithDescription("List tasks. 'pending' and 'completed' keep creation order; 'all' shows pending tasks first, then by id; "+
		"'category' matches the category exactly (empty matches every task). Giving only a category implies the category filter."),
	mcp.WithString("filter",
		mcp.Description("Which tasks to return. Defaults to 'all'."),
		mcp.Enum("pending", "completed", "all", "category"),
	),
	mcp.WithString("category",
		mcp.Description("Category to match when filtering by category."),
	),
)

var toggleToolDef = mcp.NewTool("task_toggle",
	mcp.WithDescription("Flip a task between completed and not completed. Returns the updated task."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Task id."),
	),
)

var deleteToolDef = mcp.NewTool("task_delete",
	mcp.WithDescription("Permanently remove a task. Its id is never reused."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Task id."),
	),
)

var saveToolDef = mcp.NewTool("task_save",
	mcp.WithDescription("Rewrite the task file from the in-memory list. Every change is already saved as it happens; "+
		"use this to retry after a write failure."),
)

var loadToolDef = mcp.NewTool("task_load",
	mcp.WithDescription("Replace the in-memory list with the contents of the task file. Malformed lines are skipped and counted."),
)
