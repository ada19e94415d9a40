package static

import "time"

// Directory Constants
const (
	CONFIGDIR   = ".dnanexus_config"
	ENVFILE     = "environment"
	CONFIGFILE  = "config.yaml"
	ROOTPROJECT = "/"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// API server defaults
const (
	DEFAULT_APISERVER_PROTOCOL = "https"
	DEFAULT_APISERVER_HOST     = "api.dnanexus.com"
	DEFAULT_APISERVER_PORT     = 443
	DEFAULT_AUTH_TOKEN_TYPE    = "Bearer"
	DEFAULT_EMULATOR_PORT      = 8124
)

// Environment variables read during environment loading
const (
	ENV_APISERVER_HOST     = "DX_APISERVER_HOST"
	ENV_APISERVER_PORT     = "DX_APISERVER_PORT"
	ENV_APISERVER_PROTOCOL = "DX_APISERVER_PROTOCOL"
	ENV_SECURITY_CONTEXT   = "DX_SECURITY_CONTEXT"
	ENV_PROJECT_CONTEXT_ID = "DX_PROJECT_CONTEXT_ID"
	ENV_WORKSPACE_ID       = "DX_WORKSPACE_ID"
	ENV_JOB_ID             = "DX_JOB_ID"
)

// Object classes
const (
	CLASS_RECORD  = "record"
	CLASS_FILE    = "file"
	CLASS_GTABLE  = "gtable"
	CLASS_APPLET  = "applet"
	CLASS_APP     = "app"
	CLASS_PROJECT = "project"
	CLASS_JOB     = "job"
)

var CLASSES = []string{
	CLASS_RECORD,
	CLASS_FILE,
	CLASS_GTABLE,
	CLASS_APPLET,
	CLASS_APP,
	CLASS_PROJECT,
	CLASS_JOB,
}

// Object states
const (
	STATE_OPEN    = "open"
	STATE_CLOSING = "closing"
	STATE_CLOSED  = "closed"
)

// Job states
const (
	JOB_STATE_IDLE       = "idle"
	JOB_STATE_RUNNABLE   = "runnable"
	JOB_STATE_RUNNING    = "running"
	JOB_STATE_DONE       = "done"
	JOB_STATE_FAILED     = "failed"
	JOB_STATE_TERMINATED = "terminated"
)

// Remote methods, one per handler hook
const (
	METHOD_NEW            = "new"
	METHOD_DESCRIBE       = "describe"
	METHOD_ADD_TYPES      = "addTypes"
	METHOD_REMOVE_TYPES   = "removeTypes"
	METHOD_GET_DETAILS    = "getDetails"
	METHOD_SET_DETAILS    = "setDetails"
	METHOD_SET_VISIBILITY = "setVisibility"
	METHOD_RENAME         = "rename"
	METHOD_SET_PROPERTIES = "setProperties"
	METHOD_ADD_TAGS       = "addTags"
	METHOD_REMOVE_TAGS    = "removeTags"
	METHOD_CLOSE          = "close"
	METHOD_LIST_PROJECTS  = "listProjects"
)

// Project container methods
const (
	METHOD_CLONE          = "clone"
	METHOD_MOVE           = "move"
	METHOD_REMOVE_OBJECTS = "removeObjects"
	METHOD_NEW_FOLDER     = "newFolder"
	METHOD_LIST_FOLDER    = "listFolder"
	METHOD_UPDATE         = "update"
)

// Executable methods
const (
	METHOD_RUN       = "run"
	METHOD_TERMINATE = "terminate"
)

// Link encoding
const LINK_KEY = "$dnanexus_link"

// Polling defaults for wait-on-state
const (
	POLL_INITIAL_INTERVAL = 2 * time.Second
	POLL_MULTIPLIER       = 1.5
	POLL_MAX_INTERVAL     = 30 * time.Second
)

// Transport defaults
const (
	REQUEST_TIMEOUT        = 30 * time.Second
	RETRY_MAX              = 5
	RETRY_INITIAL_INTERVAL = time.Second
	RETRY_MAX_INTERVAL     = 30 * time.Second
	USER_AGENT             = "dxgo"
	CONTENT_TYPE_JSON      = "application/json"
)
