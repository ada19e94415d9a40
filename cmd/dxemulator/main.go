package main

import (
	"fmt"

	"github.com/dxtoolkit/dxgo/pkg/api"
	"github.com/dxtoolkit/dxgo/pkg/logger"
	"github.com/dxtoolkit/dxgo/pkg/metrics"
	"github.com/dxtoolkit/dxgo/pkg/startup"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	startup.EmulatorFlags()
	logger.Log = logger.NewLogger(viper.GetString("log"), logger.ENCODING_JSON, "stdout")
	metrics.RegisterRuntime()

	if viper.GetString("log") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	emulator := api.NewApi(viper.GetString("project"), viper.GetInt("closing"), nil)

	address := fmt.Sprintf(":%d", viper.GetInt("port"))
	logger.Log.Info("emulator listening", zap.String("address", address), zap.String("project", viper.GetString("project")))

	if err := emulator.Router().Run(address); err != nil {
		logger.Log.Fatal("emulator stopped", zap.Error(err))
	}
}
