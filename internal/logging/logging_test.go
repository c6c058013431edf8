package logging

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		defer logrus.SetOutput(os.Stderr)

		Convey("Should default to stdout at info level", func() {
			out := Setup(Config{Level: "nonsense"})
			So(out, ShouldEqual, os.Stdout)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Should honour the level and JSON format", func() {
			Setup(Config{Level: "debug", Format: "json"})
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
			_, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
			So(ok, ShouldBeTrue)
		})

		Convey("Should rotate into a file when one is set", func() {
			out := Output(Config{File: "site.log", MaxSizeMB: 5, MaxBackups: 2})
			lj, ok := out.(*lumberjack.Logger)
			So(ok, ShouldBeTrue)
			So(lj.Filename, ShouldEqual, "site.log")
			So(lj.MaxSize, ShouldEqual, 5)
			So(lj.MaxBackups, ShouldEqual, 2)
		})
	})
}
