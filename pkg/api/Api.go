package api

import (
	"errors"
	"net/http"

	"github.com/dxtoolkit/dxgo/pkg/api/middlewares"
	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iresponse"
	"github.com/dxtoolkit/dxgo/pkg/kinds"
	"github.com/dxtoolkit/dxgo/pkg/logger"
	"github.com/dxtoolkit/dxgo/pkg/metrics"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/dxtoolkit/dxgo/pkg/version"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

var dataObjectRoutes = map[string]operation{
	static.METHOD_DESCRIBE:       (*Store).Describe,
	static.METHOD_ADD_TYPES:      (*Store).AddTypes,
	static.METHOD_REMOVE_TYPES:   (*Store).RemoveTypes,
	static.METHOD_GET_DETAILS:    (*Store).GetDetails,
	static.METHOD_SET_DETAILS:    (*Store).SetDetails,
	static.METHOD_SET_VISIBILITY: (*Store).SetVisibility,
	static.METHOD_RENAME:         (*Store).Rename,
	static.METHOD_SET_PROPERTIES: (*Store).SetProperties,
	static.METHOD_ADD_TAGS:       (*Store).AddTags,
	static.METHOD_REMOVE_TAGS:    (*Store).RemoveTags,
	static.METHOD_CLOSE:          (*Store).Close,
	static.METHOD_LIST_PROJECTS:  (*Store).ListProjects,
}

var routes = map[string]map[string]operation{
	static.CLASS_RECORD: dataObjectRoutes,
	static.CLASS_FILE:   dataObjectRoutes,
	static.CLASS_GTABLE: dataObjectRoutes,
	static.CLASS_APPLET: with(dataObjectRoutes, map[string]operation{
		static.METHOD_RUN: (*Store).Run,
	}),
	static.CLASS_APP: {
		static.METHOD_DESCRIBE:    (*Store).Describe,
		static.METHOD_ADD_TAGS:    (*Store).AddTags,
		static.METHOD_REMOVE_TAGS: (*Store).RemoveTags,
		static.METHOD_RUN:         (*Store).Run,
	},
	static.CLASS_JOB: {
		static.METHOD_DESCRIBE:       (*Store).Describe,
		static.METHOD_SET_PROPERTIES: (*Store).SetProperties,
		static.METHOD_ADD_TAGS:       (*Store).AddTags,
		static.METHOD_REMOVE_TAGS:    (*Store).RemoveTags,
		static.METHOD_TERMINATE:      (*Store).Terminate,
	},
	static.CLASS_PROJECT: {
		static.METHOD_DESCRIBE:       (*Store).DescribeProject,
		static.METHOD_UPDATE:         (*Store).UpdateProject,
		static.METHOD_SET_PROPERTIES: (*Store).SetProjectProperties,
		static.METHOD_ADD_TAGS:       (*Store).AddProjectTags,
		static.METHOD_REMOVE_TAGS:    (*Store).RemoveProjectTags,
		static.METHOD_CLONE:          (*Store).Clone,
		static.METHOD_MOVE:           (*Store).Move,
		static.METHOD_REMOVE_OBJECTS: (*Store).RemoveObjects,
		static.METHOD_NEW_FOLDER:     (*Store).NewFolder,
		static.METHOD_LIST_FOLDER:    (*Store).ListFolder,
	},
}

var creators = map[string]operation{
	static.CLASS_RECORD:  (*Store).Create,
	static.CLASS_FILE:    (*Store).Create,
	static.CLASS_GTABLE:  (*Store).Create,
	static.CLASS_APPLET:  (*Store).Create,
	static.CLASS_APP:     (*Store).Create,
	static.CLASS_PROJECT: (*Store).CreateProject,
	static.CLASS_JOB:     (*Store).CreateJob,
}

// NewApi returns an emulator holding project, when given, from the start.
func NewApi(project string, closing int, c clock.PassiveClock) *Api {
	api := &Api{
		Store:   NewStore(c, closing),
		Version: version.New(version.Client),
		Logger:  logger.Log,
	}

	if project != "" {
		api.Store.AddProject(project, project)
	}

	return api
}

func (api *Api) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middlewares.Logger(api.Logger), middlewares.Metrics(), middlewares.CORS())

	router.GET("/healthz", api.Health)
	router.GET("/version", api.GetVersion)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.POST("/:resource/:method", api.Dispatch)

	return router
}

// Dispatch serves POST /<resource>/<method>, the only route the client speaks.
func (api *Api) Dispatch(c *gin.Context) {
	resource := c.Param("resource")
	method := c.Param("method")

	body, err := c.GetRawData()

	if err != nil {
		api.fail(c, invalidInput("unreadable request body: %s", err.Error()))
		return
	}

	handler, err := route(resource, method)

	if err != nil {
		api.fail(c, err)
		return
	}

	response, err := handler(api.Store, resource, body)

	if err != nil {
		api.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func route(resource string, method string) (operation, error) {
	if method == static.METHOD_NEW {
		if create, ok := creators[resource]; ok {
			return create, nil
		}
	}

	class, err := kinds.ClassOf(resource)

	if err != nil {
		return nil, notFound("%s could not be found", resource)
	}

	handler, ok := routes[class][method]

	if !ok {
		return nil, methodNotFound(resource, method)
	}

	return handler, nil
}

func (api *Api) fail(c *gin.Context, err error) {
	var remote *apierrors.RemoteError

	if !errors.As(err, &remote) {
		remote = &apierrors.RemoteError{Status: http.StatusInternalServerError, Type: ERROR_INTERNAL, Message: err.Error()}
	}

	api.Logger.Debug("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("type", remote.Type),
		zap.String("message", remote.Message),
	)

	c.JSON(remote.Status, &iresponse.Response{Error: remote})
}

func with(base map[string]operation, extra map[string]operation) map[string]operation {
	merged := make(map[string]operation, len(base)+len(extra))

	for method, handler := range base {
		merged[method] = handler
	}

	for method, handler := range extra {
		merged[method] = handler
	}

	return merged
}
