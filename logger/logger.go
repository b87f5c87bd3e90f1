package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Log lines go to stdout and a per-day file under log/app.
func init() {
	if err := os.MkdirAll("log/app", os.ModePerm); err != nil {
		fmt.Println("could not create log directory:", err)
		return
	}

	fileName := fmt.Sprintf("log/app/app_%s.log", time.Now().Format("02-01-2006"))
	logFile, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Println("could not open log file:", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetLevel(log.LevelInfo)
}

func Success(message string) {
	log.Info("[OK] " + message)
}

func Info(message string) {
	log.Info(message)
}

func Warning(message string) {
	log.Warn(message)
}

func Error(message string, err error) {
	if err != nil {
		log.Error(message + ": " + err.Error())
		return
	}
	log.Error(message)
}

func Printf(format string, args ...interface{}) {
	log.Info(fmt.Sprintf(format, args...))
}
