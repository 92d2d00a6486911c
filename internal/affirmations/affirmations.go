// Package affirmations holds short encouraging messages keyed by mood.
package affirmations

import "github.com/julianstephens/orbit/internal/models"

var byMood = map[string][]string{
	models.MoodHappy: {
		"Your positive energy is contagious! Keep spreading joy ✨",
		"This happiness is well-deserved. Savor every moment 🌟",
		"Your good mood is a testament to your resilience and growth 🌈",
		"Share this positive energy with others - it multiplies when shared 💫",
		"You're creating beautiful moments that will become cherished memories 🌸",
	},
	models.MoodSad: {
		"It's okay to feel sad. Your emotions are valid and temporary 💙",
		"You don't have to be strong all the time. It's okay to rest 🌧️",
		"This feeling won't last forever. Brighter days are ahead 🌅",
		"You're not alone in this. Many people care about you 🤗",
		"Be gentle with yourself today. You're doing the best you can 🌱",
	},
	models.MoodStressed: {
		"You're stronger than this stress. Take it one breath at a time 🧘‍♀️",
		"This overwhelming feeling is temporary. You will get through this 💪",
		"It's okay to ask for help. You don't have to carry everything alone 🤝",
		"Small steps forward are still progress. Be patient with yourself 🐌",
		"Your worth isn't measured by your productivity. Rest is productive 😌",
	},
	models.MoodAnxious: {
		"You are safe in this moment. Focus on your breath 🫁",
		"Anxiety doesn't define you. It's a feeling, not who you are 🌸",
		"You've survived 100% of your anxious moments. You're resilient 💪",
		"This feeling will pass. You are stronger than your anxiety 🌅",
		"Take it one moment at a time. You don't have to figure everything out now 🕰️",
	},
	models.MoodDepressed: {
		"Depression lies. You are worthy of love and care 💜",
		"Getting out of bed today is a victory. Celebrate small wins 🏆",
		"You don't have to face this alone. Help is available and effective 🤝",
		"Your feelings are valid, but they don't define your future 🌅",
		"Recovery is possible. You deserve to feel better 💙",
	},
	models.MoodLonely: {
		"You are worthy of connection and belonging 💝",
		"Loneliness is a common human experience. You're not alone in feeling alone 🤗",
		"Connection is possible, even if it feels difficult right now 🌟",
		"Your presence matters. The world is better with you in it 🌍",
		"Reach out when you're ready. People want to connect with you 📞",
	},
	models.MoodAngry: {
		"Your anger is valid. It's okay to feel this way 🔥",
		"Express your feelings safely. You deserve to be heard 📢",
		"Anger often protects something important. What are you protecting? 🛡️",
		"You can be angry and still be a good person 💪",
		"Find healthy ways to release this energy. You have choices 🌊",
	},
	models.MoodCalm: {
		"This peaceful state is beautiful. Enjoy this moment of tranquility 🧘‍♀️",
		"Your calm energy is healing for yourself and others 🌸",
		"Use this centered state to make decisions from a place of clarity 🎯",
		"This peace is a sign of your inner strength and wisdom ✨",
		"Share this calm energy with the world. It's needed 🌍",
	},
	models.MoodGrieving: {
		"Grief is love with nowhere to go. Your feelings honor your loss 💔",
		"There's no timeline for grief. Be patient with yourself 🕰️",
		"Your memories are precious. Hold them close to your heart 💝",
		"It's okay to feel a mix of emotions. Grief is complex 🌈",
		"You don't have to 'get over it.' You learn to live with it 🌱",
	},
	models.MoodTraumatized: {
		"You are not defined by what happened to you. You are so much more 🌟",
		"Healing takes time. Be patient with your recovery journey 🦋",
		"Your trauma responses are normal reactions to abnormal events 🛡️",
		"You deserve to heal and find peace. Professional help can guide you 💜",
		"You are stronger than you know. Your survival is proof of your strength 💪",
	},
	models.MoodCrisis: {
		"You are not alone. Help is available and effective 🆘",
		"Your life has value and meaning. You matter 💝",
		"These feelings are temporary, even if they don't feel that way 🌅",
		"Reach out for help. You deserve support and care 🤝",
		"You are worthy of help and healing. Don't give up on yourself 💙",
	},
	models.MoodMixed: {
		"Complex emotions are normal. You don't have to figure everything out now 🤔",
		"It's okay to feel multiple things at once. You're human 🌈",
		"Give yourself permission to feel what you feel 💝",
		"You're doing the best you can with what you have 💪",
		"This too shall pass. Brighter moments are ahead 🌅",
	},
}

var fallback = []string{
	"You are capable of amazing things! ✨",
	"Every small step forward is progress worth celebrating 🌟",
	"Your feelings are valid, and it's okay to have difficult days 💙",
	"You have overcome challenges before, and you will again 🌈",
	"Take a moment to breathe. You're doing better than you think 🧘‍♀️",
	"Your unique perspective makes the world a better place 🌍",
}

// For returns the affirmations for a mood, or the general list when the mood
// has none.
func For(mood string) []string {
	if canonical, ok := models.CanonicalMood(mood); ok {
		if list := byMood[canonical]; len(list) > 0 {
			return list
		}
	}
	return fallback
}

// Next returns the affirmation at position i for mood, wrapping around the
// list so callers can rotate with a counter.
func Next(mood string, i int) string {
	list := For(mood)
	i %= len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i]
}
