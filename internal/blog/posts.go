package blog

import "strings"

var defaultCatalog = mustCatalog(
	Post{
		ID:      GoingToMars,
		Title:   "Going to Mars is a bad idea.",
		Tags:    []string{"essay", "space"},
		Content: goingToMars,
	},
	Post{
		ID:      AnotherPost,
		Title:   "Another blog post",
		Content: notThereYet,
	},
)

func mustCatalog(posts ...Post) *Catalog {
	c, err := NewCatalog(posts...)
	if err != nil {
		panic(err)
	}
	return c
}

func notThereYet() Document {
	return Document{Paragraphs: []string{"Not there yet..."}}
}

func goingToMars() Document {
	return marsEssay
}

// marsEssay is built once so every call hands out the same document.
var marsEssay = Document{
	Title:      "Going to Mars is probably a bad idea.",
	Paragraphs: paragraphs(marsText...),
}

// paragraphs collapses the hard wraps of the source text.
func paragraphs(raw ...string) []string {
	out := make([]string, len(raw))
	for i, p := range raw {
		out[i] = strings.Join(strings.Fields(p), " ")
	}
	return out
}

var marsText = []string{
	`The other day I was pondering colonising Mars, one of Elon Musk’s goals.
	At first glance it sounds romantic and idyllic, humans becoming a
	multi-planetary species. But then a strange thought occurred to me. Say
	we manage to go there and set up a settlement. A first city is created
	and then more. How is Mars going to be divided into countries? Is it
	going to be a bit like America, where Europeans marched over there and
	set up settlements, the years passed and the English people prevailed,
	only for them to be banished as rulers and the states claiming their
	independence as a country? Is it going to be the birth of the United
	States of Mars, i.e. USM? Say that happens, it’s not a bad thing in
	and of itself. The thing that terrified me was that Mars is arguably a
	terrible place to live. There is no natural life there and the landscape
	is plain red, rusty and sandy. The atmosphere is toxic and just like
	Elton John says, Mars is cold as hell. In other words, Mars, despite
	having hyper-advanced technological settlements, necessary to colonize
	it, will have nothing else to offer in terms of quality of living. A
	city on Mars will be a huge high-tech factory and nothing more. But
	humans will be the same, so basically Mars cities at least at first will
	be some really dystopian places to live in.`,

	`Considering the way history has progressed through the years, if moving
	to Mars is something that humanity has conquered to the level that
	allows any ordinary person to decide and move there, then Earth
	real-estate will start becoming really valuable, like, really valuable.
	Obviously the people who will handle the Earth-Mars relocations will be
	huge billion (maybe trillion even) dollars industries, and their first
	objective will be their profits and benefits. No one of them would like
	to live on Mars, because as we’ve said before, going to Mars is nothing
	more than an awesome adventure. Other than that, it’s going to be awful
	living there at the very least. Food will be factory-made,
	highly-processed and nutritionally-poor and sunbathing will be deadly.
	There are no beaches and the natural landscape comprises only sand
	hills, that you can only see from the inside of a spacesuit.`,

	`That being said, it makes total sense to believe that the corporations
	that handle Mars relocations will start pushing hard for us “plebs” to
	move there. First of all the relocation itself will be branded as the
	adventure of a lifetime. Whoever refuses to relocate will be a fool and
	a luddite at best. The trip will cost a huge amount of money for an
	ordinary person but banks will probably set up loans for doing so, even
	creating a package that contains both relocation and buying property in
	Mars. We can assume that Mars real estate will belong to the companies
	that had the technological innovations to be able to build settlements
	on Mars, therefore real estate in Mars will not be like Earth where you
	can be a 9-5 person that also owns a house or two.`,

	`Governments will collaborate with the said corporations to make living
	on Earth very costly and unbearable, creating huge taxes here with Mars
	having significantly lower. It’s reasonable to believe also that Martian
	salaries will be quite good, another thing to lure people there. There
	will be strict criteria under which every person will be reviewed and
	granted permission to live on Earth. One thing that saves us from the
	greed of the autocrats will be how far Mars is from Earth. Live chatting
	cannot exist between Mars and Earth which makes remote working almost
	unfeasible. That means the corporations on Earth have a need of workers
	stationed on Earth in order to continue working, and they also need
	customers. For these reasons, which are obviously only for the benefit
	of them, the relocation strategies cannot be simple and straightforward.
	They will have to create a plan and carefully calculate how to
	distribute the workers between the two planets. They want more of the
	planet for their own pleasure but they also need customers and
	employees. Thankfully, the speed limit of light limits their
	imperialism, at least at first.`,

	`Being a specialized worker that knows something that can’t be replicated
	by an AI machine will be more valuable than ever. It will make the
	bosses think again before replacing you or sending you away. If Mars has
	precious ores it will be a no-brainer to set up mines there. And mines
	do need miners, and if robots haven’t reached that place yet, lots of
	poor humans will be sent there to mine. If transports between Mars and
	Earth are not crazy expensive and it’s more lucrative to produce on Mars
	and then transport to Earth, factories made in countries like China or
	India will move to Mars of course. The new sweatshops will be on the Red
	Planet and the news about suicides there will travel even slower to the
	rest of the world(s), if at all.`,

	`Of course, this all will not be done in an explicit way but it will be
	covered under guises and lies. Going to Mars they’ll say is going to be
	good for the environment and Earth will finally take a breath after all
	these years. The settlements will offer every possible amenity and luxury you
	can imagine. Netflix subscription for all at one third of the price.
	Private pools for everyone. Everyone will get a shiny brand new
	apartment that has TV screens in every single room. Windows will be
	simulated and you will be able to select your “view” from a myriad of
	options, like the Great Wall in China or the blue vast sea under the
	sunset you can now watch on a Greek island. Finding a job on Earth will
	start becoming significantly harder and only the best will get the
	chance. Martian salaries will be 10% higher to sugarcoat even more the
	relocation there. It will be something like Dubai but on a larger scale.
	Huge malls in the middle of nowhere, surrounded with artificial ponds
	and plants. And many, many more treats like that.`,

	`These things are obviously still very far away, but it’s really
	interesting to think how the colonisation of Mars is going to turn out,
	at least at the beginning, and it doesn’t sound good for poor people. My
	only hope is something similar to the independence of the United States.
	Maybe the Martians will gather up at some point, tired and fed up with
	all the dystopian life they were thrust into, and firstly, declare
	themselves as sovereign and, secondly, become a superpower and
	aggressively reclaim some of their earthly rights.`,
}
