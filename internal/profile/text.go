// Package profile holds the copy of the home page.
package profile

import "strings"

var (
	Name       = "John"
	Role       = "senior software engineer"
	Experience = "7+ years"

	AboutMe = []string{
		flow(`I'm a Senior Full Stack Web Software Engineer based in the UK with 7 years
		of experience, specializing in crafting high-performance, scalable web
		applications. I hold a Bachelor's and MSc in Computer Science and currently
		work at Trustpilot, where I bring ideas to life using NextJS, Typescript,
		Javascript and React.`),

		flow(`While React is my go-to tool at work, I love exploring new technologies in
		my personal projects. You'll often find me coding in Golang, Python, Rust and
		Kotlin. I'm also a big fan of serverless technologies and have built several
		serverless applications using AWS Lambda, AWS S3 and AWS SQS.`),

		flow(`When I'm not coding, you can find me reading, playing music or hiking. I
		also love traveling and exploring new cultures.`),
	}
)

func flow(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
