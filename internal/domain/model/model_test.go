package model_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/model"
)

func TestParseTool(t *testing.T) {
	t.Parallel()

	Convey("Given tool names from the wire", t, func() {
		Convey("When the name is known", func() {
			for _, name := range []string{"psych", "income", "plan", "progress", "journal", "barrier"} {
				tool, err := model.ParseTool(name)
				So(err, ShouldBeNil)
				So(string(tool), ShouldEqual, name)
			}
		})

		Convey("When the name is unknown", func() {
			_, err := model.ParseTool("astrology")
			So(errors.Is(err, model.ErrUnknownTool), ShouldBeTrue)
		})
	})
}

func TestSubmissionValidate(t *testing.T) {
	t.Parallel()

	Convey("Given a submission", t, func() {
		base := model.Submission{
			SubmissionID: "sub-1",
			User:         model.UserContext{UserID: "u1"},
			Tool:         model.ToolPsych,
		}

		Convey("When the matching payload is present", func() {
			s := base
			s.Psych = &model.PsychInput{Activities: []string{"рисую"}}
			So(s.Validate(), ShouldBeNil)
		})

		Convey("When the payload is missing", func() {
			s := base
			So(s.Validate(), ShouldNotBeNil)
		})

		Convey("When the submission id is missing", func() {
			s := base
			s.SubmissionID = ""
			So(s.Validate(), ShouldNotBeNil)
		})

		Convey("When the tool is unknown", func() {
			s := base
			s.Tool = "astrology"
			So(s.Validate(), ShouldNotBeNil)
		})
	})
}
